// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
)

// ListingSource supplies the ordered catalog the core queries. The core
// reads it once at start-up and never writes back.
type ListingSource interface {
	Listings(ctx context.Context) ([]model.Listing, error)
}

// CatalogStorage is the persistence contract for the catalog database.
type CatalogStorage interface {
	ListingSource

	SaveListings(ctx context.Context, listings []model.Listing, opts SaveOptions) (*ImportSummary, error)
	GetListingByID(ctx context.Context, id string) (*model.Listing, error)
	CountListings(ctx context.Context) (int, error)
	GetImports(ctx context.Context) ([]ImportSummary, error)

	Migrate(ctx context.Context) error
	Close() error
}

// SaveOptions controls how an import is applied.
type SaveOptions struct {
	Source string
	// Replace removes the existing catalog before saving.
	Replace bool
}

// ImportSummary records one catalog import.
type ImportSummary struct {
	ImportedAt time.Time
	ID         string
	Source     string
	Inserted   int
	Updated    int
}
