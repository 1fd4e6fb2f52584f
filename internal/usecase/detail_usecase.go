package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/domain/repository"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/usecase/dto"
)

// DetailUseCase loads one listing for the read-only detail view, resolving
// its provider profile when the record references one.
type DetailUseCase struct {
	store  repository.RecordStore
	logger *zap.Logger
}

func NewDetailUseCase(store repository.RecordStore, logger *zap.Logger) *DetailUseCase {
	return &DetailUseCase{store: store, logger: logger}
}

// Get returns the record plus its provider. A missing listing carries a
// catalog navigation intent; a missing provider only degrades the view.
func (uc *DetailUseCase) Get(ctx context.Context, itemType domain.ItemType, id string) (*dto.ListingDetail, error) {
	collection := domain.CollectionForItemType(itemType)
	if collection == "" {
		return nil, errors.ErrUnhandledItemType.WithDetails(map[string]interface{}{
			"itemType": string(itemType),
		})
	}

	rec, err := uc.store.Get(ctx, collection, id)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrRecordNotFound.Code {
			return nil, errors.ErrRecordNotFound.WithDetails(map[string]interface{}{
				"navigate": domain.GoToCatalog(),
			})
		}
		return nil, err
	}

	detail := &dto.ListingDetail{Item: rec}

	if providerID, ok := rec["providerId"].(string); ok && providerID != "" {
		provider, err := uc.store.Get(ctx, domain.CollectionUsers, providerID)
		if err != nil {
			uc.logger.Warn("Provider lookup failed",
				zap.String("provider_id", providerID),
				zap.Error(err))
		} else {
			detail.Provider = provider
		}
	}

	return detail, nil
}
