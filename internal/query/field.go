// Package query implements the listing query engine: filter criteria, the
// match predicate, sort comparators and the pipeline that composes them.
package query

import (
	"fmt"
	"strings"
)

// Field identifies one independently-toggleable filter criterion.
type Field int

const (
	// FieldType filters by property type.
	FieldType Field = iota
	// FieldMinPrice is the inclusive lower price bound.
	FieldMinPrice
	// FieldMaxPrice is the inclusive upper price bound.
	FieldMaxPrice
	// FieldMinBedrooms is the minimum bedroom count.
	FieldMinBedrooms
	// FieldPostcode is a case-insensitive postcode substring.
	FieldPostcode
	// FieldMinDateAdded keeps listings added on or after a date.
	FieldMinDateAdded
)

// Fields lists every filter field in display order.
var Fields = []Field{
	FieldType,
	FieldMinPrice,
	FieldMaxPrice,
	FieldMinBedrooms,
	FieldPostcode,
	FieldMinDateAdded,
}

var fieldNames = map[Field]string{
	FieldType:         "type",
	FieldMinPrice:     "min-price",
	FieldMaxPrice:     "max-price",
	FieldMinBedrooms:  "bedrooms",
	FieldPostcode:     "postcode",
	FieldMinDateAdded: "added-since",
}

var fieldLabels = map[Field]string{
	FieldType:         "Type",
	FieldMinPrice:     "Min price",
	FieldMaxPrice:     "Max price",
	FieldMinBedrooms:  "Bedrooms",
	FieldPostcode:     "Postcode",
	FieldMinDateAdded: "Added since",
}

// String returns the machine name used by flags and config.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Label returns the human-readable name shown as an input placeholder.
func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return f.String()
}

// ParseField resolves a field by its machine name.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown filter field %q", name)
}
