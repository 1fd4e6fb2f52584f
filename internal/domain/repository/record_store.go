package repository

import (
	"context"

	"github.com/travelmate-console/internal/domain"
)

// RecordStore is the uniform boundary to the remote document database.
// Pure I/O: no business logic lives behind it. Implementations report
// missing ids as errors.ErrRecordNotFound and transport failures as
// errors.ErrStoreUnavailable.
type RecordStore interface {
	// Create inserts a document and returns the store-assigned id.
	Create(ctx context.Context, collection string, payload domain.Record) (string, error)

	// Get returns one document by id, with "id" populated.
	Get(ctx context.Context, collection string, id string) (domain.Record, error)

	// Update merges the given fields into an existing document. Fields not
	// present in the payload are preserved.
	Update(ctx context.Context, collection string, id string, fields domain.Record) error

	// ListLimited returns at most limit documents from a collection.
	ListLimited(ctx context.Context, collection string, limit int) ([]domain.Record, error)
}
