package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/domain/repository"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/usecase/dto"
)

// ModerationUseCase flips the approved flag on listings. Approve and
// dismiss are the same write with a different value, so repeating either
// is harmless; the in-flight guard only prevents overlapping writes to
// the same listing.
type ModerationUseCase struct {
	store  repository.RecordStore
	logger *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewModerationUseCase(store repository.RecordStore, logger *zap.Logger) *ModerationUseCase {
	return &ModerationUseCase{
		store:    store,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Decide persists an approve or dismiss decision and sends the operator
// back to the catalog.
func (uc *ModerationUseCase) Decide(ctx context.Context, itemType domain.ItemType, id string, approve bool) (*dto.DecisionResult, error) {
	collection := domain.CollectionForItemType(itemType)
	if collection == "" {
		return nil, errors.ErrUnhandledItemType.WithDetails(map[string]interface{}{
			"itemType": string(itemType),
		})
	}

	key := collection + "/" + id
	uc.mu.Lock()
	if _, busy := uc.inFlight[key]; busy {
		uc.mu.Unlock()
		return nil, errors.ErrDecisionInFlight
	}
	uc.inFlight[key] = struct{}{}
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		delete(uc.inFlight, key)
		uc.mu.Unlock()
	}()

	if err := uc.store.Update(ctx, collection, id, domain.Record{"approved": approve}); err != nil {
		uc.logger.Error("Moderation decision failed",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Bool("approve", approve),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Moderation decision applied",
		zap.String("collection", collection),
		zap.String("id", id),
		zap.Bool("approve", approve))

	return &dto.DecisionResult{
		Approved: approve,
		Navigate: domain.GoToCatalog(),
	}, nil
}
