// Package testutil provides shared fixtures for urbannest tests: a small
// catalog with deliberate price and date ties, and database helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// Listings returns the seven-listing fixture catalog in store order.
//
// Ties worth knowing about:
//   - listings 2 and 4 share price 250000 and date 2024-02-15
//   - listings 3 and 7 share price 325000
//   - listings 3 and 6 share date 2024-03-01
//   - listings 1 and 3 have postcodes containing "BR1" in different cases
func Listings() []model.Listing {
	return []model.Listing{
		{
			ID:               "1",
			Type:             model.TypeHouse,
			Price:            450000,
			Bedrooms:         3,
			Postcode:         "BR1 2AB",
			DateAdded:        model.NewDate(2024, 1, 10),
			Images:           []string{"images/1a.jpg", "images/1b.jpg", "images/1c.jpg"},
			ShortDescription: "Three bedroom semi with garden",
			LongDescription:  "A spacious three bedroom semi-detached house with a south facing garden.",
			FloorPlan:        "images/1-plan.png",
			Location:         "Bromley town centre",
		},
		{
			ID:               "2",
			Type:             model.TypeFlat,
			Price:            250000,
			Bedrooms:         2,
			Postcode:         "SE1 9XY",
			DateAdded:        model.NewDate(2024, 2, 15),
			Images:           []string{"images/2a.jpg", "images/2b.jpg"},
			ShortDescription: "Two bedroom flat by the river",
			LongDescription:  "Modern two bedroom flat with river views.",
			FloorPlan:        "images/2-plan.png",
		},
		{
			ID:               "3",
			Type:             model.TypeBungalow,
			Price:            325000,
			Bedrooms:         2,
			Postcode:         "br1 4cd",
			DateAdded:        model.NewDate(2024, 3, 1),
			Images:           []string{"images/3a.jpg", "images/3b.jpg", "images/3c.jpg"},
			ShortDescription: "Detached bungalow on a quiet road",
			LongDescription:  "A detached two bedroom bungalow with off-street parking.",
			FloorPlan:        "images/3-plan.png",
			Location:         "Bickley",
		},
		{
			ID:               "4",
			Type:             model.TypeHouse,
			Price:            250000,
			Bedrooms:         4,
			Postcode:         "CR0 1AA",
			DateAdded:        model.NewDate(2024, 2, 15),
			Images:           []string{"images/4a.jpg"},
			ShortDescription: "Four bedroom terrace needing work",
		},
		{
			ID:               "5",
			Type:             model.TypeFlat,
			Price:            180000,
			Bedrooms:         1,
			Postcode:         "E14 5HQ",
			DateAdded:        model.NewDate(2023, 12, 1),
			Images:           []string{"images/5a.jpg", "images/5b.jpg"},
			ShortDescription: "Studio-style one bedroom flat",
			LongDescription:  "Compact one bedroom flat close to the DLR.",
		},
		{
			ID:               "6",
			Type:             model.TypeHouse,
			Price:            600000,
			Bedrooms:         5,
			Postcode:         "BR2 7QT",
			DateAdded:        model.NewDate(2024, 3, 1),
			Images:           []string{"images/6a.jpg", "images/6b.jpg"},
			ShortDescription: "Five bedroom detached family home",
			LongDescription:  "Large detached house with double garage.",
			FloorPlan:        "images/6-plan.png",
		},
		{
			ID:               "7",
			Type:             model.TypeBungalow,
			Price:            325000,
			Bedrooms:         3,
			Postcode:         "TN13 1AB",
			DateAdded:        model.NewDate(2024, 1, 20),
			Images:           []string{"images/7a.jpg"},
			ShortDescription: "Three bedroom bungalow near the station",
		},
	}
}

// IDs returns the ids of listings in order.
func IDs(listings []model.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}

// WriteFile writes content to name inside a fresh temp dir and returns the
// full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// CatalogJSON is the fixture catalog's first three listings in the JSON
// file format. Listing 2 has a numeric id and listing 3 only the legacy
// picture field.
const CatalogJSON = `{
  "properties": [
    {
      "id": "1",
      "type": "House",
      "price": 450000,
      "bedrooms": 3,
      "postcode": "BR1 2AB",
      "dateAdded": "2024-01-10",
      "images": ["images/1a.jpg", "images/1b.jpg", "images/1c.jpg"],
      "shortDescription": "Three bedroom semi with garden",
      "description": "A spacious three bedroom semi-detached house with a south facing garden.",
      "floorPlan": "images/1-plan.png",
      "location": "Bromley town centre"
    },
    {
      "id": 2,
      "type": "Flat",
      "price": 250000,
      "bedrooms": 2,
      "postcode": "SE1 9XY",
      "dateAdded": "2024-02-15",
      "images": ["images/2a.jpg", "images/2b.jpg"],
      "shortDescription": "Two bedroom flat by the river"
    },
    {
      "id": "3",
      "type": "bungalow",
      "price": 325000,
      "bedrooms": 2,
      "postcode": "br1 4cd",
      "dateAdded": "2024-03-01",
      "picture": "images/3a.jpg",
      "longDescription": "A detached two bedroom bungalow with off-street parking."
    }
  ]
}`

// CatalogYAML is two listings in the YAML file format.
const CatalogYAML = `- id: "10"
  type: House
  price: 410000
  bedrooms: 3
  postcode: BR3 1AA
  dateAdded: "2024-04-02"
  images:
    - images/10a.jpg
  shortDescription: Semi near the park
- id: "11"
  type: Flat
  price: 199950
  bedrooms: 1
  postcode: SE10 8AB
  dateAdded: "2024-04-05"
  images:
    - images/11a.jpg
    - images/11b.jpg
`
