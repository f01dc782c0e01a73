package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"gopkg.in/yaml.v3"
)

// record is the on-disk shape of a catalog entry. JSON catalogs are valid
// YAML, so a single decoder reads both.
type record struct {
	ID               scalar   `yaml:"id"`
	Type             string   `yaml:"type"`
	Postcode         string   `yaml:"postcode"`
	DateAdded        string   `yaml:"dateAdded"`
	Picture          string   `yaml:"picture"`
	ShortDescription string   `yaml:"shortDescription"`
	Description      string   `yaml:"description"`
	LongDescription  string   `yaml:"longDescription"`
	FloorPlan        string   `yaml:"floorPlan"`
	Location         string   `yaml:"location"`
	Images           []string `yaml:"images"`
	Price            float64  `yaml:"price"`
	Bedrooms         int      `yaml:"bedrooms"`
}

// scalar accepts numeric or string identifiers.
type scalar string

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", node.Line)
	}
	*s = scalar(strings.TrimSpace(node.Value))
	return nil
}

type wrapped struct {
	Properties []record `yaml:"properties"`
}

// Decode reads a catalog document: either a top-level sequence of listings
// or a mapping with a "properties" sequence.
func Decode(r io.Reader) ([]model.Listing, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", common.ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidCatalog, err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	if doc.Kind != yaml.SequenceNode && doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a list of properties", common.ErrInvalidCatalog)
	}
	if doc.Kind == yaml.MappingNode && propertiesNode(doc) == nil {
		return nil, fmt.Errorf("%w: expected a \"properties\" list", common.ErrInvalidCatalog)
	}
	if err := checkShape(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidCatalog, err)
	}

	var records []record
	if doc.Kind == yaml.SequenceNode {
		if err := doc.Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidCatalog, err)
		}
	} else {
		var w wrapped
		if err := doc.Decode(&w); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidCatalog, err)
		}
		records = w.Properties
	}

	listings := make([]model.Listing, 0, len(records))
	for i, rec := range records {
		l, err := rec.toListing()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", common.ErrInvalidCatalog, i, err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// propertiesNode returns the "properties" sequence of a mapping, or nil.
func propertiesNode(m *yaml.Node) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == "properties" && m.Content[i+1].Kind == yaml.SequenceNode {
			return m.Content[i+1]
		}
	}
	return nil
}

func (r record) toListing() (model.Listing, error) {
	propertyType, ok := model.ParsePropertyType(r.Type)
	if !ok {
		return model.Listing{}, fmt.Errorf("unknown property type %q", r.Type)
	}

	added, err := model.ParseDate(r.DateAdded)
	if err != nil {
		return model.Listing{}, err
	}

	images := r.Images
	if len(images) == 0 && r.Picture != "" {
		images = []string{r.Picture}
	}

	long := r.LongDescription
	if long == "" {
		long = r.Description
	}

	return model.Listing{
		ID:               string(r.ID),
		Type:             propertyType,
		Price:            r.Price,
		Bedrooms:         r.Bedrooms,
		Postcode:         strings.TrimSpace(r.Postcode),
		DateAdded:        added,
		Images:           images,
		ShortDescription: r.ShortDescription,
		LongDescription:  long,
		FloorPlan:        r.FloorPlan,
		Location:         r.Location,
	}, nil
}

// FileSource reads listings from a JSON or YAML catalog file.
type FileSource struct {
	Path string
}

// Listings implements service.ListingSource.
func (f FileSource) Listings(ctx context.Context) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: unsupported catalog extension %q", common.ErrInvalidCatalog, filepath.Ext(f.Path))
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	listings, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(f.Path), err)
	}
	return listings, nil
}

// LoadFile is a convenience wrapper that reads and validates a catalog file.
func LoadFile(ctx context.Context, path string) (*Store, error) {
	return Open(ctx, FileSource{Path: path})
}
