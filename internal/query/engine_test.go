package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/testutil"
)

func TestVisibleListings_NoCriteriaKeepsStoreOrder(t *testing.T) {
	store := testutil.NewStore(t)

	got := VisibleListings(store, Criteria{}, SortNone)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, testutil.IDs(got))
}

func TestRun_Filters(t *testing.T) {
	store := testutil.NewStore(t)

	tests := []struct {
		name string
		in   Input
		want []string
	}{
		{
			name: "type",
			in:   Input{Type: "House"},
			want: []string{"1", "4", "6"},
		},
		{
			name: "type is case-insensitive",
			in:   Input{Type: "bungalow"},
			want: []string{"3", "7"},
		},
		{
			name: "any type is absent",
			in:   Input{Type: "Any"},
			want: []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name: "min price is inclusive",
			in:   Input{MinPrice: "325000"},
			want: []string{"1", "3", "6", "7"},
		},
		{
			name: "max price is inclusive",
			in:   Input{MaxPrice: "250000"},
			want: []string{"2", "4", "5"},
		},
		{
			name: "price range with currency and separators",
			in:   Input{MinPrice: "£200,000", MaxPrice: "$330,000"},
			want: []string{"2", "3", "4", "7"},
		},
		{
			name: "min above max leaves nothing",
			in:   Input{MinPrice: "500000", MaxPrice: "100000"},
			want: []string{},
		},
		{
			name: "non-numeric price is absent",
			in:   Input{MinPrice: "cheap", MaxPrice: "-1"},
			want: []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name: "min bedrooms",
			in:   Input{MinBedrooms: "4"},
			want: []string{"4", "6"},
		},
		{
			name: "fractional bedrooms are absent",
			in:   Input{MinBedrooms: "2.5"},
			want: []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name: "postcode lower case fragment",
			in:   Input{Postcode: "br1"},
			want: []string{"1", "3"},
		},
		{
			name: "postcode full-width fragment",
			in:   Input{Postcode: "ＢＲ２"},
			want: []string{"6"},
		},
		{
			name: "whitespace postcode is absent",
			in:   Input{Postcode: "   "},
			want: []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name: "date is inclusive",
			in:   Input{MinDateAdded: "2024-02-15"},
			want: []string{"2", "3", "4", "6"},
		},
		{
			name: "invalid date is absent",
			in:   Input{MinDateAdded: "15/02/2024"},
			want: []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name: "combined",
			in:   Input{Type: "House", MinBedrooms: "3", Postcode: "br"},
			want: []string{"1", "6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(store, tt.in, SortNone)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, testutil.IDs(got))
		})
	}
}

func TestRun_MatchesPredicate(t *testing.T) {
	store := testutil.NewStore(t)
	inputs := []Input{
		{Type: "Flat"},
		{MinPrice: "250000", MaxPrice: "450000"},
		{MinBedrooms: "2", Postcode: "1"},
		{MinDateAdded: "2024-01-15", Type: "House"},
	}

	for _, in := range inputs {
		c := Sanitize(in)
		got := Run(store, in, SortNone)

		visible := make(map[string]bool, len(got))
		for _, l := range got {
			visible[l.ID] = true
		}
		for _, l := range store.All() {
			assert.Equal(t, Matches(l, c), visible[l.ID], "listing %s with %+v", l.ID, in)
		}
	}
}

func TestRun_SortIsStable(t *testing.T) {
	store := testutil.NewStore(t)

	tests := []struct {
		mode SortMode
		want []string
	}{
		// 2 and 4 tie at 250000, 3 and 7 tie at 325000.
		{SortPriceAsc, []string{"5", "2", "4", "3", "7", "1", "6"}},
		{SortPriceDesc, []string{"6", "1", "3", "7", "2", "4", "5"}},
		// 3 and 6 tie on 2024-03-01, 2 and 4 on 2024-02-15.
		{SortDateNewest, []string{"3", "6", "2", "4", "7", "1", "5"}},
		{SortNone, []string{"1", "2", "3", "4", "5", "6", "7"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, testutil.IDs(Run(store, Input{}, tt.mode)))
		})
	}
}

func TestRun_SortOnFilteredSubset(t *testing.T) {
	store := testutil.NewStore(t)

	got := Run(store, Input{MaxPrice: "325000"}, SortPriceAsc)
	assert.Equal(t, []string{"5", "2", "4", "3", "7"}, testutil.IDs(got))
}

func TestRun_IsDeterministic(t *testing.T) {
	store := testutil.NewStore(t)
	in := Input{Postcode: "br", MinBedrooms: "2"}

	first := Run(store, in, SortDateNewest)
	second := Run(store, in, SortDateNewest)
	assert.Equal(t, first, second)

	// Mutating a result must not leak into the store.
	first[0].Price = 1
	assert.Equal(t, second, Run(store, in, SortDateNewest))
}

func TestScenario_PostcodeBR1(t *testing.T) {
	store := testutil.NewStore(t)
	require.Equal(t, 7, store.Len())

	got := Run(store, Input{Postcode: "br1"}, SortNone)
	require.NotEmpty(t, got)
	assert.Equal(t, "BR1 2AB", got[0].Postcode)
	for _, l := range got {
		assert.Contains(t, foldPostcode(l.Postcode), "br1")
	}
}

func TestScenario_FutureDateIsEmpty(t *testing.T) {
	store := testutil.NewStore(t)
	future := model.NewDate(2030, 1, 1)

	got := VisibleListings(store, Criteria{MinDateAdded: &future}, SortPriceAsc)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalize(t *testing.T) {
	bogus := model.PropertyType("Castle")
	negative := -5.0
	beds := -1
	zero := model.Date{}

	c := Normalize(Criteria{
		Type:         &bogus,
		MinPrice:     &negative,
		MinBedrooms:  &beds,
		MinDateAdded: &zero,
		Postcode:     "  se1 ",
	})

	assert.Nil(t, c.Type)
	assert.Nil(t, c.MinPrice)
	assert.Nil(t, c.MinBedrooms)
	assert.Nil(t, c.MinDateAdded)
	assert.Equal(t, "se1", c.Postcode)
	assert.Equal(t, 1, c.ActiveCount())
}
