package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// maxSchemaErrors caps how many problems are reported for one file.
const maxSchemaErrors = 5

func optionalText() map[string]any {
	return map[string]any{"type": []any{"string", "null"}}
}

// entrySchema describes the shape of one catalog entry. Value rules such as
// non-negative prices and known property types are checked later by Validate
// so they surface as ErrInvalidListing.
var entrySchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "type", "dateAdded"},
	"properties": map[string]any{
		"id":               map[string]any{"type": []any{"string", "integer"}},
		"type":             map[string]any{"type": "string"},
		"price":            map[string]any{"type": "number"},
		"bedrooms":         map[string]any{"type": "integer"},
		"dateAdded":        map[string]any{"type": "string"},
		"postcode":         optionalText(),
		"picture":          optionalText(),
		"shortDescription": optionalText(),
		"description":      optionalText(),
		"longDescription":  optionalText(),
		"floorPlan":        optionalText(),
		"location":         optionalText(),
		"images": map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
	},
}

var catalogSchema = mustSchema(map[string]any{
	"type":  "array",
	"items": entrySchema,
})

func mustSchema(def map[string]any) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(def))
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid schema: %v", err))
	}
	return s
}

// checkShape validates the entries of a catalog document, either a sequence
// or a mapping holding a "properties" sequence, before they are converted to
// listings.
func checkShape(doc *yaml.Node) error {
	var raw any
	if err := doc.Decode(&raw); err != nil {
		return err
	}
	if m, ok := raw.(map[string]any); ok {
		raw = m["properties"]
	}

	result, err := catalogSchema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("unreadable catalog: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, maxSchemaErrors)
	for _, desc := range result.Errors() {
		if len(problems) == maxSchemaErrors {
			problems = append(problems, fmt.Sprintf("and %d more", len(result.Errors())-maxSchemaErrors))
			break
		}
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("catalog does not match the listing format: %s", strings.Join(problems, "; "))
}
