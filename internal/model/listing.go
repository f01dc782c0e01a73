// Package model defines the core domain types shared across the application.
package model

import (
	"slices"
	"strings"
)

// PropertyType is the closed set of property kinds a listing can have.
type PropertyType string

const (
	// TypeHouse is a detached or terraced house.
	TypeHouse PropertyType = "House"
	// TypeFlat is an apartment within a larger building.
	TypeFlat PropertyType = "Flat"
	// TypeBungalow is a single-storey house.
	TypeBungalow PropertyType = "Bungalow"
)

// PropertyTypes lists every valid property type in display order.
var PropertyTypes = []PropertyType{TypeHouse, TypeFlat, TypeBungalow}

// IsValid checks if a property type is recognized.
func (t PropertyType) IsValid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParsePropertyType matches a type name case-insensitively.
func ParsePropertyType(s string) (PropertyType, bool) {
	s = strings.TrimSpace(s)
	for _, v := range PropertyTypes {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return "", false
}

// Listing is a single property from the catalog. Listings are loaded once
// and never mutated afterwards.
type Listing struct {
	DateAdded        Date         `json:"dateAdded"`
	ID               string       `json:"id"`
	Type             PropertyType `json:"type"`
	Postcode         string       `json:"postcode"`
	Location         string       `json:"location,omitempty"`
	ShortDescription string       `json:"shortDescription"`
	LongDescription  string       `json:"description"`
	FloorPlan        string       `json:"floorPlan"`
	Images           []string     `json:"images"`
	Price            float64      `json:"price"`
	Bedrooms         int          `json:"bedrooms"`
}

// Clone returns a copy of l that shares no memory with it.
func (l Listing) Clone() Listing {
	l.Images = slices.Clone(l.Images)
	return l
}

// Thumbnail returns the first gallery image, used for cards and list rows.
func (l Listing) Thumbnail() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// ImageIndex returns the position of ref in the gallery, or -1.
func (l Listing) ImageIndex(ref string) int {
	for i, img := range l.Images {
		if img == ref {
			return i
		}
	}
	return -1
}

// HasImage reports whether ref belongs to this listing's gallery.
func (l Listing) HasImage(ref string) bool {
	return l.ImageIndex(ref) >= 0
}
