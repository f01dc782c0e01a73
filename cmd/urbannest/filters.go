package main

import (
	"github.com/spf13/cobra"

	"github.com/dulina20231254-glitch/urbannest/internal/query"
)

var filterUsage = map[query.Field]string{
	query.FieldType:         "property type (House, Flat, Bungalow)",
	query.FieldMinPrice:     "minimum price, inclusive",
	query.FieldMaxPrice:     "maximum price, inclusive",
	query.FieldMinBedrooms:  "minimum number of bedrooms",
	query.FieldPostcode:     "postcode fragment, case-insensitive",
	query.FieldMinDateAdded: "only listings added on or after this date (YYYY-MM-DD)",
}

// addFilterFlags registers one string flag per filter field. Values are kept
// as typed; the query engine decides what is usable.
func addFilterFlags(cmd *cobra.Command) {
	for _, f := range query.Fields {
		cmd.Flags().String(f.String(), "", filterUsage[f])
	}
	cmd.Flags().String("sort", "", "sort order (none, price-asc, price-desc, date-newest)")
}

// filterInput collects the filter flags into raw input.
func filterInput(cmd *cobra.Command) query.Input {
	var in query.Input
	for _, f := range query.Fields {
		v, _ := cmd.Flags().GetString(f.String())
		in = in.With(f, v)
	}
	return in
}

// sortFlag returns the --sort value, falling back to def when unset.
func sortFlag(cmd *cobra.Command, def query.SortMode) (query.SortMode, error) {
	if !cmd.Flags().Changed("sort") {
		return def, nil
	}
	v, _ := cmd.Flags().GetString("sort")
	return query.ParseSortMode(v)
}
