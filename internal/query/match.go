package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// Matches reports whether l satisfies every present constraint in c.
// Absent constraints are vacuously true.
func Matches(l model.Listing, c Criteria) bool {
	if c.Type != nil && l.Type != *c.Type {
		return false
	}
	if c.MinPrice != nil && l.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && l.Price > *c.MaxPrice {
		return false
	}
	if c.MinBedrooms != nil && l.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.Postcode != "" && !strings.Contains(foldPostcode(l.Postcode), foldPostcode(c.Postcode)) {
		return false
	}
	if c.MinDateAdded != nil && l.DateAdded.Before(*c.MinDateAdded) {
		return false
	}
	return true
}

// Filter returns the listings that match c, in their original order.
func Filter(listings []model.Listing, c Criteria) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

// foldPostcode puts a postcode fragment in a form where full-width and
// mixed-case input compare equal. A Caser is stateful, so one is built per call.
func foldPostcode(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}
