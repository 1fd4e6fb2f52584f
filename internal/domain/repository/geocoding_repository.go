package repository

import (
	"context"

	"github.com/travelmate-console/internal/domain"
)

// GeocodingRepository resolves a free-text place query to zero or one
// coordinate. Zero results surface as errors.ErrGeocodeNoResult.
type GeocodingRepository interface {
	Lookup(ctx context.Context, query string) (*domain.Coordinate, error)
}
