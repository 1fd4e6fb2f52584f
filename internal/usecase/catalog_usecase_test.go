package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travelmate-console/internal/config"
	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/usecase"
)

func catalogConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{FetchLimit: 40},
		Cache:   config.CacheConfig{CatalogSnapshotTTL: time.Minute},
	}
}

func TestCatalogUseCase_Refresh_CapsEveryFetch(t *testing.T) {
	store := new(MockRecordStore)
	for _, collection := range domain.TrackedCollections {
		store.On("ListLimited", mock.Anything, collection, 40).
			Return([]domain.Record{}, nil)
	}

	cache := new(MockCacheRepository)
	cache.On("SetCatalogSnapshot", mock.Anything, mock.Anything, time.Minute).Return(nil)

	uc := usecase.NewCatalogUseCase(store, cache, catalogConfig(), zap.NewNop())

	snapshot, err := uc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Collections, len(domain.TrackedCollections))
	assert.Empty(t, snapshot.FailedCollections)
	store.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogUseCase_Refresh_PartialFailure(t *testing.T) {
	store := new(MockRecordStore)
	store.On("ListLimited", mock.Anything, domain.CollectionPlaces, 40).
		Return([]domain.Record{
			{"id": "p-1", "name": "Sule Pagoda", "approved": true},
		}, nil)
	store.On("ListLimited", mock.Anything, domain.CollectionHotels, 40).
		Return(nil, errors.ErrStoreUnavailable)
	for _, collection := range []string{
		domain.CollectionRestaurants, domain.CollectionServices, domain.CollectionTransport,
	} {
		store.On("ListLimited", mock.Anything, collection, 40).
			Return([]domain.Record{}, nil)
	}

	cache := new(MockCacheRepository)
	cache.On("SetCatalogSnapshot", mock.Anything, mock.Anything, time.Minute).Return(nil)

	uc := usecase.NewCatalogUseCase(store, cache, catalogConfig(), zap.NewNop())

	snapshot, err := uc.Refresh(context.Background())
	require.NoError(t, err)

	// The failed collection is reported, the rest are served.
	assert.Equal(t, []string{domain.CollectionHotels}, snapshot.FailedCollections)
	assert.NotContains(t, snapshot.Collections, domain.CollectionHotels)

	places := snapshot.Collections[domain.CollectionPlaces]
	require.Len(t, places, 1)
	assert.Equal(t, "Sule Pagoda", places[0].DisplayName)
	assert.Equal(t, domain.ItemTypePlace, places[0].Type)
	require.NotNil(t, places[0].Approved)
	assert.True(t, *places[0].Approved)
}

func TestCatalogUseCase_Refresh_AllCollectionsFail(t *testing.T) {
	store := new(MockRecordStore)
	for _, collection := range domain.TrackedCollections {
		store.On("ListLimited", mock.Anything, collection, 40).
			Return(nil, errors.ErrStoreUnavailable)
	}

	uc := usecase.NewCatalogUseCase(store, nil, catalogConfig(), zap.NewNop())

	_, err := uc.Refresh(context.Background())
	assert.ErrorIs(t, err, errors.ErrStoreUnavailable)
}

func TestCatalogUseCase_Snapshot_ServesCache(t *testing.T) {
	cached := map[string][]domain.CatalogItem{
		domain.CollectionPlaces: {{ID: "p-1", DisplayName: "Sule Pagoda"}},
	}

	cache := new(MockCacheRepository)
	cache.On("GetCatalogSnapshot", mock.Anything).Return(cached, nil)

	// No store expectations: a cache hit never touches the store.
	uc := usecase.NewCatalogUseCase(new(MockRecordStore), cache, catalogConfig(), zap.NewNop())

	snapshot, err := uc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, snapshot.Collections)
	cache.AssertExpectations(t)
}

func TestCatalogUseCase_Snapshot_CacheMissFallsBack(t *testing.T) {
	cache := new(MockCacheRepository)
	cache.On("GetCatalogSnapshot", mock.Anything).Return(nil, nil)
	cache.On("SetCatalogSnapshot", mock.Anything, mock.Anything, time.Minute).Return(nil)

	store := new(MockRecordStore)
	for _, collection := range domain.TrackedCollections {
		store.On("ListLimited", mock.Anything, collection, 40).
			Return([]domain.Record{}, nil)
	}

	uc := usecase.NewCatalogUseCase(store, cache, catalogConfig(), zap.NewNop())

	snapshot, err := uc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Collections, len(domain.TrackedCollections))
	store.AssertExpectations(t)
}

func TestCatalogUseCase_Dispatch(t *testing.T) {
	uc := usecase.NewCatalogUseCase(new(MockRecordStore), nil, catalogConfig(), zap.NewNop())

	tests := []struct {
		name     string
		action   domain.Action
		itemType domain.ItemType
		wantKind domain.IntentKind
		wantErr  error
	}{
		{"place details", domain.ActionDetails, domain.ItemTypePlace, domain.IntentDetail, nil},
		{"hotel details", domain.ActionDetails, domain.ItemTypeHotel, domain.IntentDetail, nil},
		{"restaurant edit", domain.ActionEdit, domain.ItemTypeRestaurant, domain.IntentEdit, nil},
		{"place edit", domain.ActionEdit, domain.ItemTypePlace, domain.IntentEdit, nil},
		{"service is inert", domain.ActionDetails, domain.ItemTypeService, "", errors.ErrUnhandledItemType},
		{"transport is inert", domain.ActionEdit, domain.ItemTypeTransport, "", errors.ErrUnhandledItemType},
		{"unknown type", domain.ActionDetails, domain.ItemTypeUnknown, "", errors.ErrUnhandledItemType},
		{"unknown action", "archive", domain.ItemTypePlace, "", errors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := uc.Dispatch(tt.action, tt.itemType, "id-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, intent.Kind)
			assert.Equal(t, tt.itemType, intent.ItemType)
			assert.Equal(t, "id-1", intent.ID)
		})
	}
}
