// Package catalog holds the read-only listing store and the loaders that
// build it from catalog files or any other listing source.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/service"
)

// Store is the immutable, ordered collection of listings the core queries.
// Order is the order the data source supplied the listings in.
type Store struct {
	index    map[string]int
	listings []model.Listing
}

// NewStore validates listings and builds a store from them. The slice is
// copied so later changes by the caller cannot leak in. A store always holds
// at least one listing.
func NewStore(listings []model.Listing) (*Store, error) {
	if len(listings) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	s := &Store{
		listings: make([]model.Listing, 0, len(listings)),
		index:    make(map[string]int, len(listings)),
	}

	for i, l := range listings {
		if err := Validate(l); err != nil {
			return nil, fmt.Errorf("listing at index %d: %w", i, err)
		}
		if _, dup := s.index[l.ID]; dup {
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicateListing, l.ID)
		}

		s.index[l.ID] = len(s.listings)
		s.listings = append(s.listings, l.Clone())
	}

	return s, nil
}

// Open loads every listing from src and builds a store.
func Open(ctx context.Context, src service.ListingSource) (*Store, error) {
	listings, err := src.Listings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}

	store, err := NewStore(listings)
	if err != nil {
		return nil, err
	}

	slog.Debug("Catalog loaded", "listings", store.Len())
	return store, nil
}

// All returns the listings in store order. The returned listings are copies.
func (s *Store) All() []model.Listing {
	out := make([]model.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.Clone()
	}
	return out
}

// Get looks up a listing by identifier.
func (s *Store) Get(id string) (model.Listing, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Listing{}, false
	}
	return s.listings[i].Clone(), true
}

// Position returns the store-order index of a listing.
func (s *Store) Position(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Len returns the number of listings.
func (s *Store) Len() int {
	return len(s.listings)
}
