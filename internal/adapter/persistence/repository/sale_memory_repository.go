package repository

import (
	"context"
	"sync"
	"time"

	"rutvans_api/internal/domain/entities"
	"rutvans_api/internal/usecase/interfaces"
)

// SaleMemoryRepository keeps sales in insertion order. Used for local runs and
// tests.
type SaleMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]entities.Sale
}

var _ interfaces.ISaleRepository = (*SaleMemoryRepository)(nil)

func NewSaleMemoryRepository(seed ...entities.Sale) *SaleMemoryRepository {
	r := &SaleMemoryRepository{byID: make(map[string]entities.Sale, len(seed))}
	for _, s := range seed {
		r.insert(s)
	}
	return r
}

func (r *SaleMemoryRepository) FindAll(_ context.Context) ([]entities.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entities.Sale) bool { return true }, 0), nil
}

func (r *SaleMemoryRepository) FindInRange(_ context.Context, start, end time.Time) ([]entities.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(s entities.Sale) bool {
		at := s.CreatedAt.UTC()
		return !at.Before(start) && !at.After(end)
	}, 0), nil
}

func (r *SaleMemoryRepository) List(_ context.Context, limit int) ([]entities.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entities.Sale) bool { return true }, limit), nil
}

func (r *SaleMemoryRepository) GetByID(_ context.Context, id string) (entities.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *SaleMemoryRepository) Create(_ context.Context, s entities.Sale) (entities.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(s)
	return s, nil
}

func (r *SaleMemoryRepository) Update(_ context.Context, s entities.Sale) (entities.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return entities.Sale{}, nil
	}
	r.byID[s.ID] = s
	return s, nil
}

func (r *SaleMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// insert requires the write lock.
func (r *SaleMemoryRepository) insert(s entities.Sale) {
	if _, ok := r.byID[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
}

// collect requires the read lock.
func (r *SaleMemoryRepository) collect(keep func(entities.Sale) bool, limit int) []entities.Sale {
	out := make([]entities.Sale, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		if !keep(s) {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
