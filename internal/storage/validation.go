// Package storage provides the SQLite catalog database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dulina20231254-glitch/urbannest/internal/catalog"
	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrEmptySlice   = errors.New("slice cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateListings validates a batch before it is written.
func validateListings(listings []model.Listing) error {
	if listings == nil {
		return fmt.Errorf("%w: listings", ErrNilParameter)
	}
	if len(listings) == 0 {
		return fmt.Errorf("%w: listings", ErrEmptySlice)
	}

	seen := make(map[string]bool, len(listings))
	for i, l := range listings {
		if err := catalog.Validate(l); err != nil {
			return fmt.Errorf("listing at index %d: %w", i, err)
		}
		if seen[l.ID] {
			return fmt.Errorf("listing at index %d: %w: %s", i, common.ErrDuplicateListing, l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}
