package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_CreatePayload(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetCategory("museum"))
	d.Identity = Identity{Name: "National Museum", Description: "Five floors of royal regalia."}
	d.Logistics.City = "Yangon"
	d.SetCoordinate(16.80, 96.15)
	d.AppendImage("data:image/jpeg;base64,xxxx")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := d.CreatePayload(now, AdminProviderID)

	t.Run("moderation defaults injected regardless of draft", func(t *testing.T) {
		assert.Equal(t, false, rec["approved"])
		assert.Equal(t, 0, rec["rating"])
		assert.Equal(t, now, rec["createdAt"])
		assert.Equal(t, "admin_web", rec["providerId"])
	})

	t.Run("coordinate is nested on the create path", func(t *testing.T) {
		coords, ok := rec["coordinates"].(map[string]float64)
		require.True(t, ok)
		assert.Equal(t, 16.80, coords["lat"])
		assert.Equal(t, 96.15, coords["lng"])
		assert.NotContains(t, rec, "latitude")
		assert.NotContains(t, rec, "longitude")
	})

	t.Run("form fields are flattened", func(t *testing.T) {
		assert.Equal(t, "National Museum", rec["name"])
		assert.Equal(t, "museum", rec["category"])
		assert.Equal(t, []string{"data:image/jpeg;base64,xxxx"}, rec["coverImages"])
	})
}

func TestDraft_UpdatePayload(t *testing.T) {
	d := NewDraft()
	d.Identity = Identity{Name: "Kandawgyi Park", Description: "Lakeside boardwalk."}
	d.SetCoordinate(16.7984, 96.1735)

	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	rec := d.UpdatePayload(now)

	t.Run("coordinate is flat on the edit path", func(t *testing.T) {
		assert.Equal(t, 16.7984, rec["latitude"])
		assert.Equal(t, 96.1735, rec["longitude"])
		assert.NotContains(t, rec, "coordinates")
	})

	t.Run("moderation fields are untouched", func(t *testing.T) {
		assert.NotContains(t, rec, "approved")
		assert.NotContains(t, rec, "rating")
		assert.NotContains(t, rec, "createdAt")
		assert.Equal(t, now, rec["updatedAt"])
	})
}

func TestDraftFromRecord(t *testing.T) {
	t.Run("maps flat coordinates into the draft", func(t *testing.T) {
		rec := Record{
			"name":        "Bogyoke Market",
			"category":    "shopping",
			"description": "Colonial-era bazaar.",
			"latitude":    16.7806,
			"longitude":   96.1522,
			"facilities":  []any{"Parking", "ATM"},
			"coverImages": []any{"https://img/1.jpg"},
		}

		d := DraftFromRecord(rec)

		require.True(t, d.HasCoordinate())
		assert.Equal(t, 16.7806, d.Coordinate.Lat)
		assert.Equal(t, 96.1522, d.Coordinate.Lng)
		assert.Equal(t, Category("shopping"), d.Category)
		assert.Equal(t, []string{"Parking", "ATM"}, d.Facilities)
		assert.Equal(t, []ImagePayload{"https://img/1.jpg"}, d.Images)
	})

	t.Run("missing coordinates leave the gate unsatisfied", func(t *testing.T) {
		d := DraftFromRecord(Record{"name": "Somewhere"})
		assert.False(t, d.HasCoordinate())
	})

	t.Run("legacy field names are honored", func(t *testing.T) {
		d := DraftFromRecord(Record{"p_name": "Old Name", "detail": "Old description"})
		assert.Equal(t, "Old Name", d.Identity.Name)
		assert.Equal(t, "Old description", d.Identity.Description)
	})

	t.Run("legacy free-text category falls back to default", func(t *testing.T) {
		d := DraftFromRecord(Record{"category": "temple ruins"})
		assert.Equal(t, Category("pagoda"), d.Category)
	})
}

func TestProjectItem(t *testing.T) {
	t.Run("uses name and coverImages when present", func(t *testing.T) {
		approved := Record{"id": "h1", "name": "Lotte Hotel", "coverImages": []any{"a.jpg", "b.jpg"}, "approved": true}
		item := ProjectItem(CollectionHotels, approved)

		assert.Equal(t, "h1", item.ID)
		assert.Equal(t, ItemTypeHotel, item.Type)
		assert.Equal(t, "Lotte Hotel", item.DisplayName)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, item.PreviewImages)
		require.NotNil(t, item.Approved)
		assert.True(t, *item.Approved)
	})

	t.Run("falls back to p_name and single image", func(t *testing.T) {
		item := ProjectItem(CollectionPlaces, Record{"id": "p1", "p_name": "Maha Bandula Park", "image": "park.jpg"})

		assert.Equal(t, "Maha Bandula Park", item.DisplayName)
		assert.Equal(t, []string{"park.jpg"}, item.PreviewImages)
		assert.Nil(t, item.Approved)
	})
}
