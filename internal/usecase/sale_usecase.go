package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rutvans_api/internal/domain/entities"
	"rutvans_api/internal/usecase/interfaces"
)

// ListLimit caps the sales returned by List.
const ListLimit = 100

var (
	ErrInvalidSaleID = errors.New("sale id is required")
	ErrSaleNotFound  = errors.New("sale not found")
)

//go:generate mockgen -source=sale_usecase.go -destination=../adapter/http/handlers/mocks/mock_sale_usecase.go -package=mocks

// ISaleUseCase is the CRUD surface over the sales ledger.
type ISaleUseCase interface {
	List(ctx context.Context) ([]entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	Create(ctx context.Context, sale entities.Sale) (entities.Sale, error)
	Update(ctx context.Context, id string, patch SalePatch) (entities.Sale, error)
	Delete(ctx context.Context, id string) error
}

// SalePatch carries the fields of a partial update. Nil fields are left as
// they are.
type SalePatch struct {
	Folio      *string
	UserID     *int64
	PaymentID  *int64
	ScheduleID *int64
	RateID     *int64
	RouteLabel *string
	Status     *string
	Amount     *float64
	CreatedAt  *time.Time
}

func (p SalePatch) apply(s entities.Sale) entities.Sale {
	if p.Folio != nil {
		s.Folio = *p.Folio
	}
	if p.UserID != nil {
		s.UserID = *p.UserID
	}
	if p.PaymentID != nil {
		s.PaymentID = *p.PaymentID
	}
	if p.ScheduleID != nil {
		s.ScheduleID = *p.ScheduleID
	}
	if p.RateID != nil {
		s.RateID = *p.RateID
	}
	if p.RouteLabel != nil {
		s.RouteLabel = *p.RouteLabel
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Amount != nil {
		v := *p.Amount
		s.Amount = &v
	}
	if p.CreatedAt != nil {
		s.CreatedAt = p.CreatedAt.UTC()
	}
	return s
}

type SaleUseCase struct {
	repo   interfaces.ISaleRepository
	cache  interfaces.IReportCache
	logger *zap.Logger
	now    func() time.Time
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

// NewSaleUseCase builds the CRUD use case. Every successful write drops the
// cached reports; a nil cache skips that step.
func NewSaleUseCase(repo interfaces.ISaleRepository, cache interfaces.IReportCache, logger *zap.Logger) *SaleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleUseCase{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (u *SaleUseCase) List(ctx context.Context) ([]entities.Sale, error) {
	return u.repo.List(ctx, ListLimit)
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	sale, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return sale, nil
}

// Create assigns a new id. A missing createdAt defaults to now.
func (u *SaleUseCase) Create(ctx context.Context, sale entities.Sale) (entities.Sale, error) {
	now := u.now().UTC()
	sale.ID = uuid.NewString()
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = now
	} else {
		sale.CreatedAt = sale.CreatedAt.UTC()
	}
	sale.UpdatedAt = now

	created, err := u.repo.Create(ctx, sale)
	if err != nil {
		return entities.Sale{}, err
	}
	u.logger.Info("[ventas][usecase] sale created", zap.String("id", created.ID), zap.String("folio", created.Folio))
	u.invalidateReports(ctx)
	return created, nil
}

func (u *SaleUseCase) Update(ctx context.Context, id string, patch SalePatch) (entities.Sale, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}

	updated := patch.apply(existing)
	updated.UpdatedAt = u.now().UTC()

	saved, err := u.repo.Update(ctx, updated)
	if err != nil {
		return entities.Sale{}, err
	}
	u.logger.Info("[ventas][usecase] sale updated", zap.String("id", saved.ID))
	u.invalidateReports(ctx)
	return saved, nil
}

// Delete is idempotent: removing an unknown id succeeds.
func (u *SaleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSaleID
	}
	existed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	u.logger.Info("[ventas][usecase] sale deleted", zap.String("id", id), zap.Bool("existed", existed))
	if existed {
		u.invalidateReports(ctx)
	}
	return nil
}

// invalidateReports never fails the write; a cache error is logged and the
// stale entries expire with their TTL.
func (u *SaleUseCase) invalidateReports(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("[ventas][usecase] report cache invalidation failed", zap.Error(err))
	}
}
