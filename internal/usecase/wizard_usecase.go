package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/domain/repository"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/usecase/dto"
)

// Step enumerates the wizard's states in visit order.
type Step int

const (
	StepSelectLocation Step = iota
	StepIdentity
	StepLogistics
	StepFeatures
	StepMedia
)

func (s Step) String() string {
	switch s {
	case StepSelectLocation:
		return "select_location"
	case StepIdentity:
		return "identity"
	case StepLogistics:
		return "logistics"
	case StepFeatures:
		return "features"
	case StepMedia:
		return "media"
	}
	return "unknown"
}

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Session owns one draft for the length of an editing run. The mutex
// serializes operator actions; committing is the re-entrancy guard so at
// most one commit is ever outstanding per draft.
type Session struct {
	ID      string
	Mode    Mode
	PlaceID string
	Step    Step
	Draft   *domain.Draft

	mu         sync.Mutex
	committing bool
}

// WizardUseCase drives the place-submission state machine:
// select_location -> identity -> logistics -> features -> media, with the
// location gate at step 0 and the identity gate at step 1. Sessions live
// in memory; the console is a single-operator tool.
type WizardUseCase struct {
	store    repository.RecordStore
	geocoder repository.GeocodingRepository
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewWizardUseCase(
	store repository.RecordStore,
	geocoder repository.GeocodingRepository,
	logger *zap.Logger,
) *WizardUseCase {
	return &WizardUseCase{
		store:    store,
		geocoder: geocoder,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// StartCreate opens a fresh session with a defaulted draft at step 0.
func (uc *WizardUseCase) StartCreate(_ context.Context) *dto.WizardSessionView {
	session := &Session{
		ID:    uuid.NewString(),
		Mode:  ModeCreate,
		Step:  StepSelectLocation,
		Draft: domain.NewDraft(),
	}

	uc.mu.Lock()
	uc.sessions[session.ID] = session
	uc.mu.Unlock()

	uc.logger.Info("Wizard session started", zap.String("session_id", session.ID))
	return view(session)
}

// StartEdit loads an existing place into a new session. Step 0 is still
// visited but is pre-satisfied when the stored record carries flat
// latitude/longitude fields. A missing record ends the session before it
// begins: the error carries a catalog navigation intent.
func (uc *WizardUseCase) StartEdit(ctx context.Context, placeID string) (*dto.WizardSessionView, error) {
	rec, err := uc.store.Get(ctx, domain.CollectionPlaces, placeID)
	if err != nil {
		uc.logger.Warn("Edit-mode load failed",
			zap.String("place_id", placeID),
			zap.Error(err))
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrRecordNotFound.Code {
			return nil, errors.ErrRecordNotFound.WithDetails(map[string]interface{}{
				"navigate": domain.GoToCatalog(),
			})
		}
		return nil, err
	}

	session := &Session{
		ID:      uuid.NewString(),
		Mode:    ModeEdit,
		PlaceID: placeID,
		Step:    StepSelectLocation,
		Draft:   domain.DraftFromRecord(rec),
	}

	uc.mu.Lock()
	uc.sessions[session.ID] = session
	uc.mu.Unlock()

	uc.logger.Info("Wizard edit session started",
		zap.String("session_id", session.ID),
		zap.String("place_id", placeID))
	return view(session), nil
}

// Session returns the current view of a running session.
func (uc *WizardUseCase) Session(sessionID string) (*dto.WizardSessionView, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return view(session), nil
}

// Advance moves one step forward, enforcing the step gates. A rejected
// advance leaves the step unchanged.
func (uc *WizardUseCase) Advance(sessionID string) (*dto.WizardSessionView, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch session.Step {
	case StepSelectLocation:
		if !session.Draft.HasCoordinate() {
			return nil, errors.ErrValidationBlocked.WithDetails(map[string]interface{}{
				"gate": "coordinate",
			})
		}
	case StepIdentity:
		if !session.Draft.HasIdentity() {
			return nil, errors.ErrValidationBlocked.WithDetails(map[string]interface{}{
				"gate": "identity",
			})
		}
	case StepMedia:
		// Last step: the only exit is Commit.
		return view(session), nil
	}

	session.Step++
	return view(session), nil
}

// Back moves one step backward; step 0 is the floor. No gates apply.
func (uc *WizardUseCase) Back(sessionID string) (*dto.WizardSessionView, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.Step > StepSelectLocation {
		session.Step--
	}
	return view(session), nil
}

func (uc *WizardUseCase) SetCategory(sessionID string, category string) (*dto.WizardSessionView, error) {
	return uc.mutate(sessionID, func(d *domain.Draft) error {
		if err := d.SetCategory(domain.Category(category)); err != nil {
			return errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
				"category": category,
			})
		}
		return nil
	})
}

func (uc *WizardUseCase) SetIdentity(sessionID string, req dto.IdentityRequest) (*dto.WizardSessionView, error) {
	return uc.mutate(sessionID, func(d *domain.Draft) error {
		d.Identity = domain.Identity{Name: req.Name, Description: req.Description}
		return nil
	})
}

func (uc *WizardUseCase) SetLogistics(sessionID string, req dto.LogisticsRequest) (*dto.WizardSessionView, error) {
	return uc.mutate(sessionID, func(d *domain.Draft) error {
		if req.BestTime != "" {
			d.Logistics.BestTime = domain.BestTime(req.BestTime)
		}
		if req.DressCode != "" {
			d.Logistics.DressCode = domain.DressCode(req.DressCode)
		}
		d.Logistics.EntranceFee = req.EntranceFee
		d.Logistics.OpeningHours = req.OpeningHours
		d.Logistics.City = req.City
		d.Logistics.Address = req.Address
		return nil
	})
}

func (uc *WizardUseCase) Toggle(sessionID string, req dto.ToggleRequest) (*dto.WizardSessionView, error) {
	return uc.mutate(sessionID, func(d *domain.Draft) error {
		if err := d.Toggle(domain.MemberList(req.List), req.Item); err != nil {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"list": req.List,
			})
		}
		return nil
	})
}

func (uc *WizardUseCase) AppendImage(sessionID string, image string) (*dto.WizardSessionView, error) {
	return uc.mutate(sessionID, func(d *domain.Draft) error {
		d.AppendImage(domain.ImagePayload(image))
		return nil
	})
}

func (uc *WizardUseCase) RemoveImage(sessionID string, index int) (*dto.WizardSessionView, error) {
	return uc.mutate(sessionID, func(d *domain.Draft) error {
		if err := d.RemoveImage(index); err != nil {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"index": index,
			})
		}
		return nil
	})
}

// SetCoordinate handles a map click. Each click replaces the previous
// selection and immediately satisfies the location gate.
func (uc *WizardUseCase) SetCoordinate(sessionID string, lat, lng float64) (*dto.WizardSessionView, error) {
	if !domain.ValidCoordinate(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	return uc.mutate(sessionID, func(d *domain.Draft) error {
		d.SetCoordinate(lat, lng)
		return nil
	})
}

// Geosearch resolves a free-text query and feeds the result through the
// same replace path as a click, so the two input modes stay equivalent.
func (uc *WizardUseCase) Geosearch(ctx context.Context, sessionID string, query string) (*dto.WizardSessionView, error) {
	coord, err := uc.geocoder.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}
	return uc.SetCoordinate(sessionID, coord.Lat, coord.Lng)
}

// Commit persists the draft and, on success, ends the session. The create
// path inserts a new listing with moderation defaults; the edit path
// merges the draft into the existing record. A failed commit keeps the
// session and its draft so the operator can retry with nothing lost.
func (uc *WizardUseCase) Commit(ctx context.Context, sessionID string) (*dto.CommitResult, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	if session.Step != StepMedia {
		session.mu.Unlock()
		return nil, errors.ErrValidationBlocked.WithDetails(map[string]interface{}{
			"gate": "commit is only reachable from the last step",
		})
	}
	if !session.Draft.HasCoordinate() {
		session.mu.Unlock()
		return nil, errors.ErrValidationBlocked.WithDetails(map[string]interface{}{
			"gate": "coordinate",
		})
	}
	if session.committing {
		session.mu.Unlock()
		return nil, errors.ErrCommitInFlight
	}
	session.committing = true
	mode := session.Mode
	placeID := session.PlaceID
	draft := session.Draft
	session.mu.Unlock()

	now := time.Now().UTC()

	var id string
	var commitErr error
	if mode == ModeEdit {
		id = placeID
		commitErr = uc.store.Update(ctx, domain.CollectionPlaces, placeID, draft.UpdatePayload(now))
	} else {
		id, commitErr = uc.store.Create(ctx, domain.CollectionPlaces, draft.CreatePayload(now, domain.AdminProviderID))
	}

	if commitErr != nil {
		// Draft retained: release the guard and surface the failure.
		session.mu.Lock()
		session.committing = false
		session.mu.Unlock()
		uc.logger.Error("Commit failed",
			zap.String("session_id", sessionID),
			zap.String("mode", string(mode)),
			zap.Error(commitErr))
		return nil, commitErr
	}

	uc.mu.Lock()
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()

	uc.logger.Info("Listing committed",
		zap.String("session_id", sessionID),
		zap.String("mode", string(mode)),
		zap.String("id", id))

	return &dto.CommitResult{
		ID:       id,
		Navigate: domain.GoToCatalog(),
	}, nil
}

// Discard drops a session without persisting anything.
func (uc *WizardUseCase) Discard(sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[sessionID]; !ok {
		return errors.ErrSessionNotFound
	}
	delete(uc.sessions, sessionID)
	return nil
}

func (uc *WizardUseCase) session(sessionID string) (*Session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	session, ok := uc.sessions[sessionID]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return session, nil
}

func (uc *WizardUseCase) mutate(sessionID string, fn func(*domain.Draft) error) (*dto.WizardSessionView, error) {
	session, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := fn(session.Draft); err != nil {
		return nil, err
	}
	return view(session), nil
}

func view(session *Session) *dto.WizardSessionView {
	center := domain.DefaultMapCenter
	if session.Draft.Coordinate != nil {
		center = *session.Draft.Coordinate
	}
	return &dto.WizardSessionView{
		SessionID: session.ID,
		Mode:      string(session.Mode),
		PlaceID:   session.PlaceID,
		Step:      int(session.Step),
		StepName:  session.Step.String(),
		Draft:     session.Draft,
		MapCenter: center,
	}
}
