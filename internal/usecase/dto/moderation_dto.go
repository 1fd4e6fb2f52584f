package dto

import "github.com/travelmate-console/internal/domain"

type DecisionRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

type DecisionResult struct {
	Approved bool                    `json:"approved"`
	Navigate domain.NavigationIntent `json:"navigate"`
}
