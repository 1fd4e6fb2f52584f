package errors

import "net/http"

var (
	ErrValidationBlocked = New(
		"VALIDATION_BLOCKED",
		"Step gate failed: required data is missing",
		http.StatusUnprocessableEntity,
	)

	ErrStoreUnavailable = New(
		"STORE_UNAVAILABLE",
		"Record store operation failed",
		http.StatusServiceUnavailable,
	)

	ErrRecordNotFound = New(
		"RECORD_NOT_FOUND",
		"Record not found",
		http.StatusNotFound,
	)

	ErrUnhandledItemType = New(
		"UNHANDLED_ITEM_TYPE",
		"No action is wired for this item type",
		http.StatusBadRequest,
	)

	ErrCommitInFlight = New(
		"COMMIT_IN_FLIGHT",
		"A commit for this draft is already in progress",
		http.StatusConflict,
	)

	ErrDecisionInFlight = New(
		"DECISION_IN_FLIGHT",
		"A moderation decision for this listing is already in progress",
		http.StatusConflict,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Wizard session not found",
		http.StatusNotFound,
	)

	ErrGeocodeNoResult = New(
		"GEOCODE_NO_RESULT",
		"Geocoding returned no result for the query",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Category is not part of the fixed catalog",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
