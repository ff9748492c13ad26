package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=report_cache_interface.go -destination=mocks/mock_report_cache.go -package=mock_interfaces

// IReportCache stores computed report payloads. Get decodes a hit into dest
// and reports whether the key was found. Invalidate drops every stored report
// and runs after each write to the ledger.
type IReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Invalidate(ctx context.Context) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
