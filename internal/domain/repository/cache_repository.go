package repository

import (
	"context"
	"time"

	"github.com/travelmate-console/internal/domain"
)

// CacheRepository holds short-lived derived data. The catalog snapshot is
// the only typed entry; Get returns (nil, nil) on a miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	GetCatalogSnapshot(ctx context.Context) (map[string][]domain.CatalogItem, error)
	SetCatalogSnapshot(ctx context.Context, snapshot map[string][]domain.CatalogItem, ttl time.Duration) error
}
