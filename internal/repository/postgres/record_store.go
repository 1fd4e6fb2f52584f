package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/domain/repository"
	"github.com/travelmate-console/internal/pkg/errors"
	"go.uber.org/zap"
)

// recordStore keeps every collection in one JSONB table:
//
//	CREATE TABLE records (
//	    collection text        NOT NULL,
//	    id         text        NOT NULL,
//	    data       jsonb       NOT NULL DEFAULT '{}'::jsonb,
//	    created_at timestamptz NOT NULL DEFAULT now(),
//	    updated_at timestamptz NOT NULL DEFAULT now(),
//	    PRIMARY KEY (collection, id)
//	);
//
// The JSONB || operator gives the same partial-merge semantics as the
// document database's $set, so callers cannot tell the backends apart.
type recordStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRecordStore(db *DB) repository.RecordStore {
	return &recordStore{
		db:     db.DB,
		logger: db.logger,
	}
}

func (s *recordStore) Create(ctx context.Context, collection string, payload domain.Record) (string, error) {
	id := uuid.NewString()

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to marshal record", zap.String("collection", collection), zap.Error(err))
		return "", errors.ErrStoreUnavailable
	}

	query := `INSERT INTO records (collection, id, data) VALUES ($1, $2, $3)`
	if _, err := s.db.ExecContext(ctx, query, collection, id, data); err != nil {
		s.logger.Error("Failed to insert record",
			zap.String("collection", collection),
			zap.Error(err))
		return "", errors.ErrStoreUnavailable
	}

	return id, nil
}

func (s *recordStore) Get(ctx context.Context, collection string, id string) (domain.Record, error) {
	query := `SELECT data FROM records WHERE collection = $1 AND id = $2`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRecordNotFound
	}
	if err != nil {
		s.logger.Error("Failed to get record",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	rec := domain.Record{}
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Error("Failed to unmarshal record", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}
	rec["id"] = id

	return rec, nil
}

func (s *recordStore) Update(ctx context.Context, collection string, id string, fields domain.Record) error {
	data, err := json.Marshal(fields)
	if err != nil {
		s.logger.Error("Failed to marshal update", zap.String("collection", collection), zap.Error(err))
		return errors.ErrStoreUnavailable
	}

	query := `UPDATE records SET data = data || $3::jsonb, updated_at = now()
	          WHERE collection = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, query, collection, id, data)
	if err != nil {
		s.logger.Error("Failed to update record",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return errors.ErrStoreUnavailable
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrStoreUnavailable
	}
	if affected == 0 {
		return errors.ErrRecordNotFound
	}

	return nil
}

func (s *recordStore) ListLimited(ctx context.Context, collection string, limit int) ([]domain.Record, error) {
	query := `SELECT id, data FROM records WHERE collection = $1 ORDER BY created_at LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, collection, limit)
	if err != nil {
		s.logger.Error("Failed to list records",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			s.logger.Error("Failed to scan record", zap.Error(err))
			return nil, errors.ErrStoreUnavailable
		}

		rec := domain.Record{}
		if err := json.Unmarshal(data, &rec); err != nil {
			s.logger.Error("Failed to unmarshal record", zap.String("id", id), zap.Error(err))
			return nil, errors.ErrStoreUnavailable
		}
		rec["id"] = id
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrStoreUnavailable
	}

	return records, nil
}
