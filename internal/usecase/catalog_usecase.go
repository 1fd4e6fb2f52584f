package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/travelmate-console/internal/config"
	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/domain/repository"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/usecase/dto"
)

// CatalogUseCase aggregates every tracked collection into one bounded
// snapshot. A collection that fails to load is reported and skipped; the
// aggregate errors only when nothing loaded at all.
type CatalogUseCase struct {
	store  repository.RecordStore
	cache  repository.CacheRepository
	cfg    *config.Config
	logger *zap.Logger
}

func NewCatalogUseCase(
	store repository.RecordStore,
	cache repository.CacheRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		store:  store,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

// Refresh re-reads every tracked collection from the store and caches the
// result. Each fetch is capped at the configured limit.
func (uc *CatalogUseCase) Refresh(ctx context.Context) (*dto.CatalogSnapshot, error) {
	snapshot := &dto.CatalogSnapshot{
		Collections: make(map[string][]domain.CatalogItem, len(domain.TrackedCollections)),
	}

	for _, collection := range domain.TrackedCollections {
		records, err := uc.store.ListLimited(ctx, collection, uc.cfg.Catalog.FetchLimit)
		if err != nil {
			uc.logger.Warn("Collection fetch failed, skipping",
				zap.String("collection", collection),
				zap.Error(err))
			snapshot.FailedCollections = append(snapshot.FailedCollections, collection)
			continue
		}

		items := make([]domain.CatalogItem, 0, len(records))
		for _, rec := range records {
			items = append(items, domain.ProjectItem(collection, rec))
		}
		snapshot.Collections[collection] = items
	}

	if len(snapshot.FailedCollections) == len(domain.TrackedCollections) {
		return nil, errors.ErrStoreUnavailable
	}

	if uc.cache != nil {
		if err := uc.cache.SetCatalogSnapshot(ctx, snapshot.Collections, uc.cfg.Cache.CatalogSnapshotTTL); err != nil {
			uc.logger.Warn("Failed to cache catalog snapshot", zap.Error(err))
		}
	}

	return snapshot, nil
}

// Snapshot serves the cached aggregate when one is still fresh and falls
// back to a full refresh otherwise.
func (uc *CatalogUseCase) Snapshot(ctx context.Context) (*dto.CatalogSnapshot, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetCatalogSnapshot(ctx)
		if err != nil {
			uc.logger.Warn("Catalog snapshot cache read failed", zap.Error(err))
		} else if cached != nil {
			return &dto.CatalogSnapshot{Collections: cached}, nil
		}
	}
	return uc.Refresh(ctx)
}

// Dispatch routes an operator gesture on a catalog item to a navigation
// intent. Service and transport cards render but have no actions wired.
func (uc *CatalogUseCase) Dispatch(action domain.Action, itemType domain.ItemType, id string) (domain.NavigationIntent, error) {
	switch itemType {
	case domain.ItemTypePlace, domain.ItemTypeHotel, domain.ItemTypeRestaurant:
	default:
		uc.logger.Warn("Action on inert item type",
			zap.String("action", string(action)),
			zap.String("itemType", string(itemType)),
			zap.String("id", id))
		return domain.NavigationIntent{}, errors.ErrUnhandledItemType.WithDetails(map[string]interface{}{
			"itemType": string(itemType),
		})
	}

	switch action {
	case domain.ActionDetails:
		return domain.GoToDetail(itemType, id), nil
	case domain.ActionEdit:
		return domain.GoToEdit(itemType, id), nil
	}

	return domain.NavigationIntent{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"action": string(action),
	})
}
