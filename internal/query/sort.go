package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// SortMode selects one of the fixed orderings applied after filtering.
type SortMode string

const (
	// SortNone keeps store order.
	SortNone SortMode = "none"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortMode = "price-asc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortMode = "price-desc"
	// SortDateNewest orders by date added, newest first.
	SortDateNewest SortMode = "date-newest"
)

// SortModes lists every mode in the order the UI cycles through them.
var SortModes = []SortMode{SortNone, SortPriceAsc, SortPriceDesc, SortDateNewest}

// ParseSortMode resolves a mode name. The empty string and "date" are
// accepted as aliases for none and date-newest.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "price-asc":
		return SortPriceAsc, nil
	case "price-desc":
		return SortPriceDesc, nil
	case "date", "date-newest":
		return SortDateNewest, nil
	default:
		return SortNone, fmt.Errorf("unknown sort mode %q", s)
	}
}

// Label returns the text shown in the sort selector.
func (m SortMode) Label() string {
	switch m {
	case SortPriceAsc:
		return "Price: Low → High"
	case SortPriceDesc:
		return "Price: High → Low"
	case SortDateNewest:
		return "Date Added (Newest)"
	default:
		return "No sorting"
	}
}

// Next returns the mode after m in SortModes, wrapping around.
func (m SortMode) Next() SortMode {
	i := slices.Index(SortModes, m)
	return SortModes[(i+1)%len(SortModes)]
}

// Compare orders a and b under mode. Equal keys compare as 0 so a stable
// sort keeps store order for ties.
func Compare(a, b model.Listing, mode SortMode) int {
	switch mode {
	case SortPriceAsc:
		return cmp.Compare(a.Price, b.Price)
	case SortPriceDesc:
		return cmp.Compare(b.Price, a.Price)
	case SortDateNewest:
		return b.DateAdded.Compare(a.DateAdded)
	default:
		return 0
	}
}

// Sort orders listings in place under mode using a stable sort.
func Sort(listings []model.Listing, mode SortMode) {
	if mode == SortNone {
		return
	}
	slices.SortStableFunc(listings, func(a, b model.Listing) int {
		return Compare(a, b, mode)
	})
}
