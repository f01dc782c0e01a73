package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// Validate checks the rules every catalog listing must satisfy.
func Validate(l model.Listing) error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: missing id", common.ErrInvalidListing)
	}
	if !l.Type.IsValid() {
		return fmt.Errorf("%w: %s has unknown type %q", common.ErrInvalidListing, l.ID, l.Type)
	}
	if l.Price < 0 || math.IsNaN(l.Price) || math.IsInf(l.Price, 0) {
		return fmt.Errorf("%w: %s has invalid price %v", common.ErrInvalidListing, l.ID, l.Price)
	}
	if l.Bedrooms < 0 {
		return fmt.Errorf("%w: %s has negative bedroom count", common.ErrInvalidListing, l.ID)
	}
	if l.DateAdded.IsZero() {
		return fmt.Errorf("%w: %s is missing dateAdded", common.ErrInvalidListing, l.ID)
	}
	if len(l.Images) == 0 {
		return fmt.Errorf("%w: %s has no images", common.ErrInvalidListing, l.ID)
	}
	for i, img := range l.Images {
		if strings.TrimSpace(img) == "" {
			return fmt.Errorf("%w: %s has an empty image reference at position %d", common.ErrInvalidListing, l.ID, i)
		}
	}
	return nil
}
