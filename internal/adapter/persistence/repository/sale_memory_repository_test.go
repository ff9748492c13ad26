package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"rutvans_api/internal/domain/entities"
)

func amountPtr(v float64) *float64 {
	return &v
}

func TestSaleMemoryRepository(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewSaleMemoryRepository(
		entities.Sale{ID: "z", CreatedAt: base.Add(30 * time.Hour)},
		entities.Sale{ID: "y", CreatedAt: base.Add(2 * time.Hour)},
		entities.Sale{ID: "x", CreatedAt: base.Add(-time.Hour)},
	)
	ctx := context.Background()

	t.Run("find all keeps insertion order", func(t *testing.T) {
		got, _ := repo.FindAll(ctx)
		if len(got) != 3 || got[0].ID != "z" || got[1].ID != "y" || got[2].ID != "x" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("find in range is inclusive", func(t *testing.T) {
		got, _ := repo.FindInRange(ctx, base.Add(2*time.Hour), base.Add(30*time.Hour))
		if len(got) != 2 || got[0].ID != "z" || got[1].ID != "y" {
			t.Fatalf("unexpected range: %+v", got)
		}
	})

	t.Run("list limit", func(t *testing.T) {
		got, _ := repo.List(ctx, 1)
		if len(got) != 1 || got[0].ID != "z" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		got, err := repo.Update(ctx, entities.Sale{ID: "nope"})
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero sale, got %+v %v", got, err)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		if _, err := repo.Update(ctx, entities.Sale{ID: "y", Amount: amountPtr(3), CreatedAt: base}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(ctx, "y")
		if got.EffectiveAmount() != 3 {
			t.Fatalf("expected updated amount, got %+v", got)
		}

		existed, _ := repo.Delete(ctx, "y")
		if !existed {
			t.Fatalf("expected existing sale")
		}
		all, _ := repo.FindAll(ctx)
		if len(all) != 2 || all[0].ID != "z" || all[1].ID != "x" {
			t.Fatalf("unexpected order after delete: %+v", all)
		}
		existed, _ = repo.Delete(ctx, "y")
		if existed {
			t.Fatalf("expected missing sale on second delete")
		}
	})
}

func TestSaleMemoryRepository_ConcurrentAccess(t *testing.T) {
	repo := NewSaleMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Create(ctx, entities.Sale{ID: string(rune('A' + i)), Amount: amountPtr(1)})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = repo.FindAll(ctx)
		}()
	}
	wg.Wait()

	all, _ := repo.FindAll(ctx)
	if len(all) != 50 {
		t.Fatalf("expected 50 sales, got %d", len(all))
	}
}
