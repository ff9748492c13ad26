// Package cache holds the report cache backends.
package cache

import (
	"context"
	"time"

	"rutvans_api/internal/usecase/interfaces"
)

// KeyPrefix namespaces every report key written by this service.
const KeyPrefix = "rutvans:report:"

type NoopReportCache struct{}

var _ interfaces.IReportCache = NoopReportCache{}

func (NoopReportCache) Get(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

func (NoopReportCache) Invalidate(_ context.Context) error {
	return nil
}
