package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulina20231254-glitch/urbannest/internal/catalog"
	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/testutil"
)

func TestDecode_JSON(t *testing.T) {
	listings, err := catalog.Decode(strings.NewReader(testutil.CatalogJSON))
	require.NoError(t, err)
	require.Len(t, listings, 3)

	assert.Equal(t, []string{"1", "2", "3"}, testutil.IDs(listings))

	first := listings[0]
	assert.Equal(t, model.TypeHouse, first.Type)
	assert.InDelta(t, 450000.0, first.Price, 0)
	assert.Equal(t, model.NewDate(2024, 1, 10), first.DateAdded)
	assert.Equal(t, "Bromley town centre", first.Location)
	assert.Len(t, first.Images, 3)
	assert.Contains(t, first.LongDescription, "south facing garden")

	// Lower-case type and the single picture field.
	third := listings[2]
	assert.Equal(t, model.TypeBungalow, third.Type)
	assert.Equal(t, []string{"images/3a.jpg"}, third.Images)
	assert.Contains(t, third.LongDescription, "off-street parking")
}

func TestDecode_YAML(t *testing.T) {
	listings, err := catalog.Decode(strings.NewReader(testutil.CatalogYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"10", "11"}, testutil.IDs(listings))
	assert.InDelta(t, 199950.0, listings[1].Price, 0)
	assert.Equal(t, []string{"images/11a.jpg", "images/11b.jpg"}, listings[1].Images)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"scalar", `"listings"`},
		{"syntax", `{"properties": [`},
		{"unknown type", `[{"id": "1", "type": "Castle", "dateAdded": "2024-01-01"}]`},
		{"bad date", `[{"id": "1", "type": "Flat", "dateAdded": "01/01/2024"}]`},
		{"nested id", `[{"id": {"n": 1}, "type": "Flat", "dateAdded": "2024-01-01"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, common.ErrInvalidCatalog)
		})
	}
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()

	store, err := catalog.LoadFile(ctx, testutil.WriteFile(t, "listings.json", testutil.CatalogJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())

	store, err = catalog.LoadFile(ctx, testutil.WriteFile(t, "listings.yml", testutil.CatalogYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	_, err = catalog.LoadFile(ctx, testutil.WriteFile(t, "listings.csv", "id,type"))
	assert.ErrorIs(t, err, common.ErrInvalidCatalog)

	_, err = catalog.LoadFile(ctx, "/nonexistent/listings.json")
	assert.Error(t, err)

	// Decoding succeeds but validation does not: no images at all.
	_, err = catalog.LoadFile(ctx, testutil.WriteFile(t, "bare.json",
		`[{"id": "1", "type": "Flat", "price": 1, "dateAdded": "2024-01-01"}]`))
	assert.ErrorIs(t, err, common.ErrInvalidListing)
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.FileSource{Path: "any.json"}.Listings(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_ShapeErrorsNameTheField(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"price as text", `[{"id": "1", "type": "Flat", "price": "cheap", "dateAdded": "2024-01-01"}]`, "price"},
		{"missing date", `[{"id": "1", "type": "Flat"}]`, "dateAdded"},
		{"image list of numbers", `{"properties": [{"id": 7, "type": "Flat", "dateAdded": "2024-01-01", "images": [1, 2]}]}`, "images"},
		{"fractional bedrooms", "- id: a\n  type: House\n  dateAdded: \"2024-01-01\"\n  bedrooms: 2.5\n", "bedrooms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, common.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDecode_MappingWithoutProperties(t *testing.T) {
	docs := []string{
		`{"listings": [{"id": "1", "type": "Flat", "price": 1, "dateAdded": "2024-01-01", "images": ["a.jpg"]}]}`,
		`{"properties": null}`,
		`{"properties": {"id": "1"}}`,
	}

	for _, doc := range docs {
		_, err := catalog.Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, common.ErrInvalidCatalog, doc)
	}
}

func TestLoadFile_EmptyCatalog(t *testing.T) {
	ctx := context.Background()

	for name, doc := range map[string]string{
		"empty.json":      `[]`,
		"empty-list.json": `{"properties": []}`,
		"empty.yaml":      "[]\n",
	} {
		t.Run(name, func(t *testing.T) {
			store, err := catalog.LoadFile(ctx, testutil.WriteFile(t, name, doc))
			assert.Nil(t, store)
			assert.ErrorIs(t, err, common.ErrEmptyCatalog)
		})
	}
}
