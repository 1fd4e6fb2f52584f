package dto

import "github.com/travelmate-console/internal/domain"

type StartWizardRequest struct {
	// PlaceID switches the session into edit mode when present.
	PlaceID string `json:"placeId"`
}

type CategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

type IdentityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LogisticsRequest struct {
	BestTime     string `json:"bestTime"`
	DressCode    string `json:"dressCode"`
	EntranceFee  string `json:"entranceFee"`
	OpeningHours string `json:"openingHours"`
	City         string `json:"city"`
	Address      string `json:"address"`
}

type CoordinateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ToggleRequest struct {
	List string `json:"list" validate:"required,oneof=facilities tags"`
	Item string `json:"item" validate:"required"`
}

type ImageRequest struct {
	Image string `json:"image" validate:"required"`
}

type GeosearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// WizardSessionView is what the console renders between operations.
type WizardSessionView struct {
	SessionID string            `json:"sessionId"`
	Mode      string            `json:"mode"`
	PlaceID   string            `json:"placeId,omitempty"`
	Step      int               `json:"step"`
	StepName  string            `json:"stepName"`
	Draft     *domain.Draft     `json:"draft"`
	MapCenter domain.Coordinate `json:"mapCenter"`
}

type CommitResult struct {
	ID       string                  `json:"id"`
	Navigate domain.NavigationIntent `json:"navigate"`
}
