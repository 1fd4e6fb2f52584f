package domain

import "time"

// Record is a schemaless document as the record store sees it. The store
// assigns opaque string ids under the "id" key on reads.
type Record map[string]any

// Collection names in the record store. "Places" is capitalized in the
// production data; renaming it would orphan every existing document.
const (
	CollectionPlaces      = "Places"
	CollectionHotels      = "hotels"
	CollectionRestaurants = "restaurants"
	CollectionServices    = "travelServices"
	CollectionTransport   = "transportation"
	CollectionUsers       = "users"
)

// TrackedCollections are the ones the dashboard aggregates, in display order.
var TrackedCollections = []string{
	CollectionPlaces,
	CollectionHotels,
	CollectionRestaurants,
	CollectionServices,
	CollectionTransport,
}

// AdminProviderID marks console-created listings that have no real provider.
const AdminProviderID = "admin_web"

// CreatePayload assembles the draft into the listing shape the create path
// persists: the coordinate nested under "coordinates", moderation and
// rating defaults injected regardless of draft content.
func (d *Draft) CreatePayload(now time.Time, providerID string) Record {
	rec := d.fieldPayload()
	if d.Coordinate != nil {
		rec["coordinates"] = map[string]float64{
			"lat": d.Coordinate.Lat,
			"lng": d.Coordinate.Lng,
		}
	}
	rec["approved"] = false
	rec["rating"] = 0
	rec["createdAt"] = now
	rec["providerId"] = providerID
	return rec
}

// UpdatePayload assembles the partial merge for the edit path. The
// coordinate goes back as flat "latitude"/"longitude" scalars, not the
// nested object the create path writes; existing documents already use
// the flat shape and readers key off it.
func (d *Draft) UpdatePayload(now time.Time) Record {
	rec := d.fieldPayload()
	if d.Coordinate != nil {
		rec["latitude"] = d.Coordinate.Lat
		rec["longitude"] = d.Coordinate.Lng
	}
	rec["updatedAt"] = now
	return rec
}

func (d *Draft) fieldPayload() Record {
	images := make([]string, len(d.Images))
	for i, img := range d.Images {
		images[i] = string(img)
	}
	return Record{
		"name":         d.Identity.Name,
		"category":     string(d.Category),
		"description":  d.Identity.Description,
		"address":      d.Logistics.Address,
		"city":         d.Logistics.City,
		"openingHours": d.Logistics.OpeningHours,
		"entranceFee":  d.Logistics.EntranceFee,
		"bestTime":     string(d.Logistics.BestTime),
		"dressCode":    string(d.Logistics.DressCode),
		"contactPhone": d.ContactPhone,
		"website":      d.Website,
		"facilities":   append([]string{}, d.Facilities...),
		"tags":         append([]string{}, d.Tags...),
		"coverImages":  images,
	}
}

// DraftFromRecord rebuilds a draft from a stored place so the wizard can
// re-enter edit mode. Flat latitude/longitude fields map back into the
// coordinate, pre-satisfying the location gate when both are present.
func DraftFromRecord(rec Record) *Draft {
	d := NewDraft()

	if v, ok := rec["category"].(string); ok && v != "" {
		if err := d.SetCategory(Category(v)); err != nil {
			// Legacy free-text categories fall back to the default.
			d.Category = Categories[0]
		}
	}
	d.Identity.Name = stringField(rec, "name")
	if d.Identity.Name == "" {
		d.Identity.Name = stringField(rec, "p_name")
	}
	d.Identity.Description = stringField(rec, "description")
	if d.Identity.Description == "" {
		d.Identity.Description = stringField(rec, "detail")
	}
	if v := stringField(rec, "bestTime"); v != "" {
		d.Logistics.BestTime = BestTime(v)
	}
	if v := stringField(rec, "dressCode"); v != "" {
		d.Logistics.DressCode = DressCode(v)
	}
	if v := stringField(rec, "entranceFee"); v != "" {
		d.Logistics.EntranceFee = v
	}
	if v := stringField(rec, "openingHours"); v != "" {
		d.Logistics.OpeningHours = v
	}
	d.Logistics.City = stringField(rec, "city")
	d.Logistics.Address = stringField(rec, "address")
	d.ContactPhone = stringField(rec, "contactPhone")
	d.Website = stringField(rec, "website")
	d.Facilities = stringSliceField(rec, "facilities")
	d.Tags = stringSliceField(rec, "tags")
	for _, img := range stringSliceField(rec, "coverImages") {
		d.Images = append(d.Images, ImagePayload(img))
	}

	lat, okLat := floatField(rec, "latitude")
	lng, okLng := floatField(rec, "longitude")
	if okLat && okLng {
		d.SetCoordinate(lat, lng)
	}

	return d
}

func stringField(rec Record, key string) string {
	v, _ := rec[key].(string)
	return v
}

func stringSliceField(rec Record, key string) []string {
	out := []string{}
	switch vs := rec[key].(type) {
	case []string:
		out = append(out, vs...)
	case []any:
		for _, v := range vs {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func floatField(rec Record, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
