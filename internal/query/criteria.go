package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// Input is the raw text the user has typed into each filter field. Nothing
// in it is trusted; Sanitize turns it into Criteria.
type Input struct {
	Type         string
	MinPrice     string
	MaxPrice     string
	MinBedrooms  string
	Postcode     string
	MinDateAdded string
}

// Get returns the raw value of a field.
func (in Input) Get(f Field) string {
	switch f {
	case FieldType:
		return in.Type
	case FieldMinPrice:
		return in.MinPrice
	case FieldMaxPrice:
		return in.MaxPrice
	case FieldMinBedrooms:
		return in.MinBedrooms
	case FieldPostcode:
		return in.Postcode
	case FieldMinDateAdded:
		return in.MinDateAdded
	}
	return ""
}

// With returns a copy of in with one field replaced.
func (in Input) With(f Field, value string) Input {
	switch f {
	case FieldType:
		in.Type = value
	case FieldMinPrice:
		in.MinPrice = value
	case FieldMaxPrice:
		in.MaxPrice = value
	case FieldMinBedrooms:
		in.MinBedrooms = value
	case FieldPostcode:
		in.Postcode = value
	case FieldMinDateAdded:
		in.MinDateAdded = value
	}
	return in
}

// Criteria is a set of optional constraints. A nil pointer (or an empty
// postcode) means the constraint is absent and excludes nothing.
type Criteria struct {
	Type         *model.PropertyType
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	MinDateAdded *model.Date
	Postcode     string
}

// IsEmpty reports whether no constraint is present.
func (c Criteria) IsEmpty() bool {
	return c.ActiveCount() == 0
}

// ActiveCount returns how many constraints are present.
func (c Criteria) ActiveCount() int {
	n := 0
	if c.Type != nil {
		n++
	}
	if c.MinPrice != nil {
		n++
	}
	if c.MaxPrice != nil {
		n++
	}
	if c.MinBedrooms != nil {
		n++
	}
	if c.Postcode != "" {
		n++
	}
	if c.MinDateAdded != nil {
		n++
	}
	return n
}

// Has reports whether the constraint for f is present.
func (c Criteria) Has(f Field) bool {
	switch f {
	case FieldType:
		return c.Type != nil
	case FieldMinPrice:
		return c.MinPrice != nil
	case FieldMaxPrice:
		return c.MaxPrice != nil
	case FieldMinBedrooms:
		return c.MinBedrooms != nil
	case FieldPostcode:
		return c.Postcode != ""
	case FieldMinDateAdded:
		return c.MinDateAdded != nil
	}
	return false
}

// Sanitize converts raw user input into criteria. Blank, non-numeric,
// negative or unparseable values become absent constraints rather than
// errors. "Any" and unknown type names also become absent.
func Sanitize(in Input) Criteria {
	var c Criteria

	if t, ok := model.ParsePropertyType(in.Type); ok {
		c.Type = &t
	}
	c.MinPrice = parseAmount(in.MinPrice)
	c.MaxPrice = parseAmount(in.MaxPrice)
	c.MinBedrooms = parseCount(in.MinBedrooms)
	c.Postcode = strings.TrimSpace(in.Postcode)

	if s := strings.TrimSpace(in.MinDateAdded); s != "" {
		if d, err := model.ParseDate(s); err == nil {
			c.MinDateAdded = &d
		}
	}

	return c
}

// Normalize re-validates criteria built in code rather than from Input, so
// the match predicate only ever sees valid values.
func Normalize(c Criteria) Criteria {
	if c.Type != nil && !c.Type.IsValid() {
		c.Type = nil
	}
	if c.MinPrice != nil && !validAmount(*c.MinPrice) {
		c.MinPrice = nil
	}
	if c.MaxPrice != nil && !validAmount(*c.MaxPrice) {
		c.MaxPrice = nil
	}
	if c.MinBedrooms != nil && *c.MinBedrooms < 0 {
		c.MinBedrooms = nil
	}
	if c.MinDateAdded != nil && c.MinDateAdded.IsZero() {
		c.MinDateAdded = nil
	}
	c.Postcode = strings.TrimSpace(c.Postcode)
	return c
}

// parseAmount accepts plain numbers with optional currency symbol and
// thousands separators, e.g. "250000", "£250,000".
func parseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "£$€")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !validAmount(v) {
		return nil
	}
	return &v
}

func parseCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
