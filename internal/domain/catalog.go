package domain

// ItemType is the closed union of listing types the dashboard knows about.
type ItemType string

const (
	ItemTypePlace      ItemType = "place"
	ItemTypeHotel      ItemType = "hotel"
	ItemTypeRestaurant ItemType = "restaurant"
	ItemTypeService    ItemType = "service"
	ItemTypeTransport  ItemType = "transport"
	ItemTypeUnknown    ItemType = ""
)

// ItemTypeForCollection maps a store collection onto the union.
func ItemTypeForCollection(collection string) ItemType {
	switch collection {
	case CollectionPlaces:
		return ItemTypePlace
	case CollectionHotels:
		return ItemTypeHotel
	case CollectionRestaurants:
		return ItemTypeRestaurant
	case CollectionServices:
		return ItemTypeService
	case CollectionTransport:
		return ItemTypeTransport
	}
	return ItemTypeUnknown
}

// CollectionForItemType is the inverse mapping; unknown types return "".
func CollectionForItemType(t ItemType) string {
	switch t {
	case ItemTypePlace:
		return CollectionPlaces
	case ItemTypeHotel:
		return CollectionHotels
	case ItemTypeRestaurant:
		return CollectionRestaurants
	case ItemTypeService:
		return CollectionServices
	case ItemTypeTransport:
		return CollectionTransport
	}
	return ""
}

// Action is an operator gesture on a catalog item.
type Action string

const (
	ActionDetails Action = "details"
	ActionEdit    Action = "edit"
)

// CatalogItem is the minimal projection every listing type shares, enough
// for the dashboard card and for routing operator actions.
type CatalogItem struct {
	ID            string   `json:"id"`
	Type          ItemType `json:"type"`
	DisplayName   string   `json:"displayName"`
	PreviewImages []string `json:"previewImages"`
	Approved      *bool    `json:"approved,omitempty"`
}

// ProjectItem reduces a raw record to the shared projection. Older place
// documents carry p_name instead of name and a single image field instead
// of coverImages; both fallbacks are kept.
func ProjectItem(collection string, rec Record) CatalogItem {
	item := CatalogItem{
		ID:   stringField(rec, "id"),
		Type: ItemTypeForCollection(collection),
	}

	item.DisplayName = stringField(rec, "name")
	if item.DisplayName == "" {
		item.DisplayName = stringField(rec, "p_name")
	}

	item.PreviewImages = stringSliceField(rec, "coverImages")
	if len(item.PreviewImages) == 0 {
		if img := stringField(rec, "image"); img != "" {
			item.PreviewImages = []string{img}
		}
	}

	if approved, ok := rec["approved"].(bool); ok {
		item.Approved = &approved
	}

	return item
}
