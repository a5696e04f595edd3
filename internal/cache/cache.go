package cache

import (
	"context"
	"time"

	"shoptally/backend/internal/domain"
)

// ReportCache holds computed dashboard summaries. Keys embed the store
// revision, so entries are invalidated by construction and the TTL only
// bounds memory in the backing store.
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.DashboardSummary, bool, error)
	Set(ctx context.Context, key string, value *domain.DashboardSummary, ttl time.Duration) error
}

type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string) (*domain.DashboardSummary, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ *domain.DashboardSummary, _ time.Duration) error {
	return nil
}
