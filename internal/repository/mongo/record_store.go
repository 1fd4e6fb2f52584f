package mongo

import (
	"context"

	"github.com/google/uuid"
	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/domain/repository"
	"github.com/travelmate-console/internal/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type recordStore struct {
	db     *mongo.Database
	logger *zap.Logger
}

// NewRecordStore exposes the Mongo database through the uniform
// collection/id contract the console works against.
func NewRecordStore(db *DB) repository.RecordStore {
	return &recordStore{
		db:     db.database,
		logger: db.logger,
	}
}

func (s *recordStore) Create(ctx context.Context, collection string, payload domain.Record) (string, error) {
	id := uuid.NewString()

	doc := bson.M{}
	for k, v := range payload {
		doc[k] = v
	}
	doc["_id"] = id

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		s.logger.Error("Failed to insert record",
			zap.String("collection", collection),
			zap.Error(err))
		return "", errors.ErrStoreUnavailable
	}

	return id, nil
}

func (s *recordStore) Get(ctx context.Context, collection string, id string) (domain.Record, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrRecordNotFound
	}
	if err != nil {
		s.logger.Error("Failed to get record",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	return toRecord(doc), nil
}

func (s *recordStore) Update(ctx context.Context, collection string, id string, fields domain.Record) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		s.logger.Error("Failed to update record",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return errors.ErrStoreUnavailable
	}
	if res.MatchedCount == 0 {
		return errors.ErrRecordNotFound
	}

	return nil
}

func (s *recordStore) ListLimited(ctx context.Context, collection string, limit int) ([]domain.Record, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{},
		options.Find().SetLimit(int64(limit)))
	if err != nil {
		s.logger.Error("Failed to list records",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.Error("Failed to decode records",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	records := make([]domain.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toRecord(doc))
	}
	return records, nil
}

// toRecord rewrites driver-specific value types into plain Go ones so the
// layers above never see bson primitives, and surfaces _id as "id".
func toRecord(doc bson.M) domain.Record {
	rec := domain.Record{}
	for k, v := range doc {
		if k == "_id" {
			if id, ok := v.(string); ok {
				rec["id"] = id
			} else {
				rec["id"] = objectIDString(v)
			}
			continue
		}
		rec[k] = normalize(v)
	}
	return rec
}

func objectIDString(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func normalize(v any) any {
	switch val := v.(type) {
	case bson.M:
		m := map[string]any{}
		for k, inner := range val {
			m[k] = normalize(inner)
		}
		return m
	case bson.D:
		m := map[string]any{}
		for _, e := range val {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case primitive.A:
		arr := make([]any, len(val))
		for i, inner := range val {
			arr[i] = normalize(inner)
		}
		return arr
	case primitive.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}
