package domain

import "errors"

var (
	ErrCategoryNotInCatalog = errors.New("category is not in the fixed catalog")
	ErrUnknownMemberList    = errors.New("unknown member list")
	ErrImageIndexOutOfRange = errors.New("image index out of range")
)

type Category string

// Categories a place can be filed under. Fixed catalog, never free text.
var Categories = []Category{
	"pagoda", "attraction", "park", "museum", "nature",
	"playground", "shopping", "historical", "zoo", "viewpoint",
}

type BestTime string

var BestTimeOptions = []BestTime{
	"sunrise", "morning", "afternoon", "sunset", "evening", "night",
}

type DressCode string

var DressCodeOptions = []DressCode{
	"any", "modest (shoulders covered)", "formal", "no footwear required", "traditional only",
}

var FacilityOptions = []string{
	"Parking", "Public Restrooms", "Free WiFi", "Cafeteria", "Souvenir Shop",
	"Wheelchair Accessible", "Guide Service", "ATM", "Photography Allowed", "Security",
}

var TagOptions = []string{
	"Family Friendly", "Historical", "Photography Spot", "Quiet Area", "Crowded",
	"Hidden Gem", "Instagrammable", "Hiking", "Spiritual",
}

// ImagePayload is an opaque storable image blob (data URL or upload URL).
// The console never inspects it.
type ImagePayload string

// MemberList names the two toggleable selections on a draft.
type MemberList string

const (
	ListFacilities MemberList = "facilities"
	ListTags       MemberList = "tags"
)

type Identity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Logistics struct {
	BestTime     BestTime  `json:"bestTime"`
	DressCode    DressCode `json:"dressCode"`
	EntranceFee  string    `json:"entranceFee"`
	OpeningHours string    `json:"openingHours"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
}

// Draft is the in-progress place submission owned by the wizard session.
// Pure data holder: no network access, mutated in place, committed or
// discarded at the end of the session.
type Draft struct {
	Category     Category       `json:"category"`
	Identity     Identity       `json:"identity"`
	Logistics    Logistics      `json:"logistics"`
	ContactPhone string         `json:"contactPhone"`
	Website      string         `json:"website"`
	Facilities   []string       `json:"facilities"`
	Tags         []string       `json:"tags"`
	Images       []ImagePayload `json:"images"`
	Coordinate   *Coordinate    `json:"coordinate,omitempty"`
}

// NewDraft returns a draft pre-filled with the form defaults.
func NewDraft() *Draft {
	return &Draft{
		Category: "pagoda",
		Logistics: Logistics{
			BestTime: "morning",
			// The stored default predates the expanded option label and
			// existing documents carry it verbatim.
			DressCode:    "modest",
			EntranceFee:  "Free",
			OpeningHours: "9:00 AM - 5:00 PM",
		},
		Facilities: []string{},
		Tags:       []string{},
		Images:     []ImagePayload{},
	}
}

func (d *Draft) SetCategory(c Category) error {
	for _, known := range Categories {
		if c == known {
			d.Category = c
			return nil
		}
	}
	return ErrCategoryNotInCatalog
}

// Toggle applies a symmetric difference: add the item if absent, remove it
// if present. Only facilities and tags are toggleable.
func (d *Draft) Toggle(list MemberList, item string) error {
	var target *[]string
	switch list {
	case ListFacilities:
		target = &d.Facilities
	case ListTags:
		target = &d.Tags
	default:
		return ErrUnknownMemberList
	}

	for i, existing := range *target {
		if existing == item {
			*target = append((*target)[:i], (*target)[i+1:]...)
			return nil
		}
	}
	*target = append(*target, item)
	return nil
}

// AppendImage keeps upload order.
func (d *Draft) AppendImage(img ImagePayload) {
	d.Images = append(d.Images, img)
}

// RemoveImage drops one image by index without disturbing the relative
// order of the rest.
func (d *Draft) RemoveImage(index int) error {
	if index < 0 || index >= len(d.Images) {
		return ErrImageIndexOutOfRange
	}
	d.Images = append(d.Images[:index], d.Images[index+1:]...)
	return nil
}

// SetCoordinate replaces the current selection; clicks and geosearch
// results are equivalent inputs.
func (d *Draft) SetCoordinate(lat, lng float64) {
	d.Coordinate = &Coordinate{Lat: lat, Lng: lng}
}

// HasCoordinate is the step-0 gate and the ready-to-persist invariant.
func (d *Draft) HasCoordinate() bool {
	return d.Coordinate != nil
}

// HasIdentity gates progression past the identity step.
func (d *Draft) HasIdentity() bool {
	return d.Identity.Name != "" && d.Identity.Description != ""
}
