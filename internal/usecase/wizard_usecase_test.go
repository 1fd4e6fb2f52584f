package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/usecase"
	"github.com/travelmate-console/internal/usecase/dto"
)

func newWizard(store *MockRecordStore, geocoder *MockGeocodingRepository) *usecase.WizardUseCase {
	return usecase.NewWizardUseCase(store, geocoder, zap.NewNop())
}

func TestWizardUseCase_StartCreate_Defaults(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))

	view := uc.StartCreate(context.Background())

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "create", view.Mode)
	assert.Equal(t, 0, view.Step)
	assert.Equal(t, "select_location", view.StepName)
	assert.Equal(t, domain.Category("pagoda"), view.Draft.Category)
	assert.Equal(t, "Free", view.Draft.Logistics.EntranceFee)
	assert.Nil(t, view.Draft.Coordinate)
	assert.Equal(t, domain.DefaultMapCenter, view.MapCenter)
}

func TestWizardUseCase_Advance_LocationGate(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())

	// Filling other fields does not satisfy the location gate.
	_, err := uc.SetCategory(view.SessionID, "museum")
	require.NoError(t, err)
	_, err = uc.SetIdentity(view.SessionID, dto.IdentityRequest{
		Name:        "National Museum",
		Description: "Artifacts and royal regalia",
	})
	require.NoError(t, err)

	_, err = uc.Advance(view.SessionID)
	assert.ErrorIs(t, err, errors.ErrValidationBlocked)

	// The rejected advance left the step unchanged.
	current, err := uc.Session(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Step)

	// A map click opens the gate.
	_, err = uc.SetCoordinate(view.SessionID, 16.80, 96.15)
	require.NoError(t, err)

	advanced, err := uc.Advance(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, advanced.Step)
	assert.Equal(t, "identity", advanced.StepName)
}

func TestWizardUseCase_Geosearch_EquivalentToClick(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	geocoder.On("Lookup", mock.Anything, "Shwedagon Pagoda").
		Return(&domain.Coordinate{Lat: 16.7983, Lng: 96.1499}, nil)

	uc := newWizard(new(MockRecordStore), geocoder)
	view := uc.StartCreate(context.Background())

	resolved, err := uc.Geosearch(context.Background(), view.SessionID, "Shwedagon Pagoda")
	require.NoError(t, err)
	require.NotNil(t, resolved.Draft.Coordinate)
	assert.Equal(t, 16.7983, resolved.Draft.Coordinate.Lat)
	assert.Equal(t, 96.1499, resolved.Draft.Coordinate.Lng)
	assert.Equal(t, *resolved.Draft.Coordinate, resolved.MapCenter)

	// A later click replaces the geosearch result.
	clicked, err := uc.SetCoordinate(view.SessionID, 16.80, 96.15)
	require.NoError(t, err)
	assert.Equal(t, 16.80, clicked.Draft.Coordinate.Lat)

	_, err = uc.Advance(view.SessionID)
	assert.NoError(t, err)
	geocoder.AssertExpectations(t)
}

func TestWizardUseCase_Geosearch_NoResult(t *testing.T) {
	geocoder := new(MockGeocodingRepository)
	geocoder.On("Lookup", mock.Anything, "nowhere at all").
		Return(nil, errors.ErrGeocodeNoResult)

	uc := newWizard(new(MockRecordStore), geocoder)
	view := uc.StartCreate(context.Background())

	_, err := uc.Geosearch(context.Background(), view.SessionID, "nowhere at all")
	assert.ErrorIs(t, err, errors.ErrGeocodeNoResult)

	current, err := uc.Session(view.SessionID)
	require.NoError(t, err)
	assert.Nil(t, current.Draft.Coordinate)
}

func TestWizardUseCase_SetCoordinate_Invalid(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())

	_, err := uc.SetCoordinate(view.SessionID, 91.0, 96.15)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
}

func TestWizardUseCase_Advance_IdentityGate(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())

	_, err := uc.SetCoordinate(view.SessionID, 16.80, 96.15)
	require.NoError(t, err)
	_, err = uc.Advance(view.SessionID)
	require.NoError(t, err)

	// Name without description is not enough.
	_, err = uc.SetIdentity(view.SessionID, dto.IdentityRequest{Name: "Kandawgyi Park"})
	require.NoError(t, err)
	_, err = uc.Advance(view.SessionID)
	assert.ErrorIs(t, err, errors.ErrValidationBlocked)

	_, err = uc.SetIdentity(view.SessionID, dto.IdentityRequest{
		Name:        "Kandawgyi Park",
		Description: "Lakeside park east of the pagoda",
	})
	require.NoError(t, err)

	advanced, err := uc.Advance(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, advanced.Step)
}

func TestWizardUseCase_Back_FloorsAtFirstStep(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())

	back, err := uc.Back(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Step)
}

func TestWizardUseCase_SessionNotFound(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))

	_, err := uc.Session("missing")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)

	_, err = uc.Advance("missing")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func walkToMedia(t *testing.T, uc *usecase.WizardUseCase, sessionID string) {
	t.Helper()

	_, err := uc.SetCoordinate(sessionID, 16.80, 96.15)
	require.NoError(t, err)
	_, err = uc.SetIdentity(sessionID, dto.IdentityRequest{
		Name:        "Bogyoke Market",
		Description: "Colonial-era market with jade and textiles",
	})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err = uc.Advance(sessionID)
		require.NoError(t, err)
	}

	view, err := uc.Session(sessionID)
	require.NoError(t, err)
	require.Equal(t, "media", view.StepName)
}

func TestWizardUseCase_Commit_CreatePayload(t *testing.T) {
	store := new(MockRecordStore)
	store.On("Create", mock.Anything, domain.CollectionPlaces, mock.MatchedBy(func(rec domain.Record) bool {
		coords, ok := rec["coordinates"].(map[string]float64)
		return ok &&
			coords["lat"] == 16.80 && coords["lng"] == 96.15 &&
			rec["approved"] == false &&
			rec["rating"] == 0 &&
			rec["providerId"] == domain.AdminProviderID &&
			rec["createdAt"] != nil
	})).Return("new-id-1", nil)

	uc := newWizard(store, new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())
	walkToMedia(t, uc, view.SessionID)

	_, err := uc.AppendImage(view.SessionID, "data:image/jpeg;base64,AAA")
	require.NoError(t, err)

	result, err := uc.Commit(context.Background(), view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "new-id-1", result.ID)
	assert.Equal(t, domain.IntentCatalog, result.Navigate.Kind)

	// The session is gone after a successful commit.
	_, err = uc.Session(view.SessionID)
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
	store.AssertExpectations(t)
}

func TestWizardUseCase_Commit_OnlyFromLastStep(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())

	_, err := uc.Commit(context.Background(), view.SessionID)
	assert.ErrorIs(t, err, errors.ErrValidationBlocked)
}

func TestWizardUseCase_Commit_FailureRetainsDraft(t *testing.T) {
	store := new(MockRecordStore)
	store.On("Create", mock.Anything, domain.CollectionPlaces, mock.Anything).
		Return("", errors.ErrStoreUnavailable).Once()
	store.On("Create", mock.Anything, domain.CollectionPlaces, mock.Anything).
		Return("new-id-2", nil).Once()

	uc := newWizard(store, new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())
	walkToMedia(t, uc, view.SessionID)

	_, err := uc.Commit(context.Background(), view.SessionID)
	assert.ErrorIs(t, err, errors.ErrStoreUnavailable)

	// Nothing was lost: the session and its draft survive for a retry.
	current, err := uc.Session(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Bogyoke Market", current.Draft.Identity.Name)

	result, err := uc.Commit(context.Background(), view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "new-id-2", result.ID)
	store.AssertExpectations(t)
}

func TestWizardUseCase_Commit_ReentrancyGuard(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	store := new(MockRecordStore)
	store.On("Create", mock.Anything, domain.CollectionPlaces, mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return("new-id-3", nil).Once()

	uc := newWizard(store, new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())
	walkToMedia(t, uc, view.SessionID)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Commit(context.Background(), view.SessionID)
		done <- err
	}()

	<-entered
	_, err := uc.Commit(context.Background(), view.SessionID)
	assert.ErrorIs(t, err, errors.ErrCommitInFlight)

	close(release)
	require.NoError(t, <-done)
	store.AssertExpectations(t)
}

func TestWizardUseCase_StartEdit_MissingRecord(t *testing.T) {
	store := new(MockRecordStore)
	store.On("Get", mock.Anything, domain.CollectionPlaces, "X1").
		Return(nil, errors.ErrRecordNotFound)

	uc := newWizard(store, new(MockGeocodingRepository))

	_, err := uc.StartEdit(context.Background(), "X1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRecordNotFound)

	appErr := err.(*errors.AppError)
	navigate, ok := appErr.Details["navigate"].(domain.NavigationIntent)
	require.True(t, ok)
	assert.Equal(t, domain.IntentCatalog, navigate.Kind)
}

func TestWizardUseCase_StartEdit_PreSatisfiesLocationGate(t *testing.T) {
	store := new(MockRecordStore)
	store.On("Get", mock.Anything, domain.CollectionPlaces, "p-77").
		Return(domain.Record{
			"id":          "p-77",
			"p_name":      "Sule Pagoda",
			"detail":      "Octagonal stupa at the city center",
			"category":    "pagoda",
			"latitude":    16.7745,
			"longitude":   96.1584,
			"coverImages": []any{"https://img/one.jpg"},
		}, nil)

	uc := newWizard(store, new(MockGeocodingRepository))

	view, err := uc.StartEdit(context.Background(), "p-77")
	require.NoError(t, err)
	assert.Equal(t, "edit", view.Mode)
	assert.Equal(t, "p-77", view.PlaceID)
	assert.Equal(t, "Sule Pagoda", view.Draft.Identity.Name)
	require.NotNil(t, view.Draft.Coordinate)
	assert.Equal(t, 16.7745, view.Draft.Coordinate.Lat)

	// The stored coordinate already opens the step-0 gate.
	advanced, err := uc.Advance(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, advanced.Step)
}

func TestWizardUseCase_Commit_EditWritesFlatCoordinates(t *testing.T) {
	store := new(MockRecordStore)
	store.On("Get", mock.Anything, domain.CollectionPlaces, "p-77").
		Return(domain.Record{
			"id":          "p-77",
			"name":        "Sule Pagoda",
			"description": "Octagonal stupa at the city center",
			"latitude":    16.7745,
			"longitude":   96.1584,
		}, nil)
	store.On("Update", mock.Anything, domain.CollectionPlaces, "p-77", mock.MatchedBy(func(rec domain.Record) bool {
		_, nested := rec["coordinates"]
		_, hasApproved := rec["approved"]
		_, hasRating := rec["rating"]
		return rec["latitude"] == 16.7745 &&
			rec["longitude"] == 96.1584 &&
			!nested && !hasApproved && !hasRating &&
			rec["updatedAt"] != nil
	})).Return(nil)

	uc := newWizard(store, new(MockGeocodingRepository))

	view, err := uc.StartEdit(context.Background(), "p-77")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err = uc.Advance(view.SessionID)
		require.NoError(t, err)
	}

	result, err := uc.Commit(context.Background(), view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "p-77", result.ID)
	assert.Equal(t, domain.IntentCatalog, result.Navigate.Kind)
	store.AssertExpectations(t)
}

func TestWizardUseCase_ToggleAndImages(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())

	toggled, err := uc.Toggle(view.SessionID, dto.ToggleRequest{List: "facilities", Item: "Parking"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Parking"}, toggled.Draft.Facilities)

	toggled, err = uc.Toggle(view.SessionID, dto.ToggleRequest{List: "facilities", Item: "Parking"})
	require.NoError(t, err)
	assert.Empty(t, toggled.Draft.Facilities)

	_, err = uc.Toggle(view.SessionID, dto.ToggleRequest{List: "amenities", Item: "Parking"})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	_, err = uc.AppendImage(view.SessionID, "a")
	require.NoError(t, err)
	withTwo, err := uc.AppendImage(view.SessionID, "b")
	require.NoError(t, err)
	require.Len(t, withTwo.Draft.Images, 2)

	afterRemove, err := uc.RemoveImage(view.SessionID, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.ImagePayload{"b"}, afterRemove.Draft.Images)

	_, err = uc.RemoveImage(view.SessionID, 5)
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestWizardUseCase_Discard(t *testing.T) {
	uc := newWizard(new(MockRecordStore), new(MockGeocodingRepository))
	view := uc.StartCreate(context.Background())

	require.NoError(t, uc.Discard(view.SessionID))
	assert.ErrorIs(t, uc.Discard(view.SessionID), errors.ErrSessionNotFound)
}
