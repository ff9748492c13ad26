package interfaces

import (
	"context"
	"time"

	"rutvans_api/internal/domain/entities"
)

//go:generate mockgen -source=sale_repository_interface.go -destination=mocks/mock_sale_repository.go -package=mock_interfaces

// ISaleRepository abstracts the sales ledger store.
//
// Report reads (FindAll, FindInRange) return sales in a stable store order:
// insertion order for the in-memory store, created_at then id for DynamoDB and
// Postgres. Lookups return a zero Sale (empty ID) when nothing matches.
type ISaleRepository interface {
	FindAll(ctx context.Context) ([]entities.Sale, error)
	FindInRange(ctx context.Context, start, end time.Time) ([]entities.Sale, error)
	List(ctx context.Context, limit int) ([]entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	Update(ctx context.Context, s entities.Sale) (entities.Sale, error)
	Delete(ctx context.Context, id string) (bool, error)
}
