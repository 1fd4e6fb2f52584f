package dto

import "github.com/travelmate-console/internal/domain"

// CatalogSnapshot maps every tracked collection onto its bounded item
// slice. FailedCollections lists the ones whose fetch errored during the
// refresh that produced this snapshot.
type CatalogSnapshot struct {
	Collections       map[string][]domain.CatalogItem `json:"collections"`
	FailedCollections []string                        `json:"failedCollections,omitempty"`
}

// ListingDetail is one record plus, when the record references a
// providerId, the resolved provider profile.
type ListingDetail struct {
	Item     domain.Record `json:"item"`
	Provider domain.Record `json:"provider,omitempty"`
}
