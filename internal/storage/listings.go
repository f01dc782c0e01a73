package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/service"
	"github.com/google/uuid"
)

// SaveListings writes a catalog batch in one transaction. Listings that
// already exist are updated in place and keep their catalog position; new
// listings are appended after the current last position.
func (s *SQLiteStorage) SaveListings(ctx context.Context, listings []model.Listing, opts service.SaveOptions) (*service.ImportSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateListings(listings); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if opts.Replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM listings`); err != nil {
			return nil, fmt.Errorf("failed to clear catalog: %w", err)
		}
	}

	summary := &service.ImportSummary{
		ID:         uuid.NewString(),
		Source:     opts.Source,
		ImportedAt: time.Now().UTC(),
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO imports (id, source, imported_at) VALUES (?, ?, ?)
	`, summary.ID, summary.Source, summary.ImportedAt); err != nil {
		return nil, fmt.Errorf("failed to record import: %w", err)
	}

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM listings`).Scan(&next); err != nil {
		return nil, fmt.Errorf("failed to read catalog position: %w", err)
	}

	for _, l := range listings {
		inserted, err := s.saveListingTx(ctx, tx, l, next, summary.ID)
		if err != nil {
			return nil, err
		}
		if inserted {
			summary.Inserted++
			next++
		} else {
			summary.Updated++
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE imports SET inserted = ?, updated = ? WHERE id = ?
	`, summary.Inserted, summary.Updated, summary.ID); err != nil {
		return nil, fmt.Errorf("failed to update import record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	slog.Debug("Saved listings",
		"import_id", summary.ID,
		"inserted", summary.Inserted,
		"updated", summary.Updated)

	return summary, nil
}

func (s *SQLiteStorage) saveListingTx(ctx context.Context, tx *sql.Tx, l model.Listing, position int, importID string) (bool, error) {
	var existing int
	err := tx.QueryRowContext(ctx, `SELECT position FROM listings WHERE id = ?`, l.ID).Scan(&existing)
	inserted := errors.Is(err, sql.ErrNoRows)
	if err != nil && !inserted {
		return false, fmt.Errorf("failed to look up listing %s: %w", l.ID, err)
	}

	if inserted {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO listings (
				id, position, type, price, bedrooms, postcode, date_added,
				short_description, long_description, floor_plan, location, import_id
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, l.ID, position, string(l.Type), l.Price, l.Bedrooms, l.Postcode, l.DateAdded.String(),
			l.ShortDescription, l.LongDescription, l.FloorPlan, l.Location, importID)
	} else {
		_, err = tx.ExecContext(ctx, `
			UPDATE listings SET
				type = ?, price = ?, bedrooms = ?, postcode = ?, date_added = ?,
				short_description = ?, long_description = ?, floor_plan = ?, location = ?,
				import_id = ?
			WHERE id = ?
		`, string(l.Type), l.Price, l.Bedrooms, l.Postcode, l.DateAdded.String(),
			l.ShortDescription, l.LongDescription, l.FloorPlan, l.Location, importID, l.ID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to save listing %s: %w", l.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM listing_images WHERE listing_id = ?`, l.ID); err != nil {
		return false, fmt.Errorf("failed to clear images for %s: %w", l.ID, err)
	}
	for i, ref := range l.Images {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO listing_images (listing_id, position, ref) VALUES (?, ?, ?)
		`, l.ID, i, ref); err != nil {
			return false, fmt.Errorf("failed to save image %d for %s: %w", i, l.ID, err)
		}
	}

	return inserted, nil
}

// Listings returns the whole catalog in position order. It implements
// service.ListingSource.
func (s *SQLiteStorage) Listings(ctx context.Context) ([]model.Listing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.getListingsTx(ctx, s.db, "", nil)
}

// GetListingByID retrieves one listing.
func (s *SQLiteStorage) GetListingByID(ctx context.Context, id string) (*model.Listing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	listings, err := s.getListingsTx(ctx, s.db, "WHERE id = ?", []any{id})
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}
	return &listings[0], nil
}

func (s *SQLiteStorage) getListingsTx(ctx context.Context, q queryable, where string, args []any) ([]model.Listing, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, type, price, bedrooms, postcode, date_added,
			short_description, long_description, floor_plan, location
		FROM listings
		`+where+`
		ORDER BY position
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var listings []model.Listing
	index := make(map[string]int)
	for rows.Next() {
		var (
			l         model.Listing
			listType  string
			dateAdded string
		)
		if err := rows.Scan(&l.ID, &listType, &l.Price, &l.Bedrooms, &l.Postcode, &dateAdded,
			&l.ShortDescription, &l.LongDescription, &l.FloorPlan, &l.Location); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		l.Type = model.PropertyType(listType)
		if l.DateAdded, err = model.ParseDate(dateAdded); err != nil {
			return nil, fmt.Errorf("listing %s: %w", l.ID, err)
		}
		index[l.ID] = len(listings)
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	if err := s.attachImages(ctx, q, listings, index); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *SQLiteStorage) attachImages(ctx context.Context, q queryable, listings []model.Listing, index map[string]int) error {
	if len(listings) == 0 {
		return nil
	}

	rows, err := q.QueryContext(ctx, `
		SELECT listing_id, ref FROM listing_images ORDER BY listing_id, position
	`)
	if err != nil {
		return fmt.Errorf("failed to query images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, ref string
		if err := rows.Scan(&id, &ref); err != nil {
			return fmt.Errorf("failed to scan image: %w", err)
		}
		if i, ok := index[id]; ok {
			listings[i].Images = append(listings[i].Images, ref)
		}
	}
	return rows.Err()
}

// CountListings returns the catalog size.
func (s *SQLiteStorage) CountListings(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// GetImports returns past imports, newest first.
func (s *SQLiteStorage) GetImports(ctx context.Context) ([]service.ImportSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, inserted, updated, imported_at
		FROM imports
		ORDER BY imported_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query imports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var imports []service.ImportSummary
	for rows.Next() {
		var imp service.ImportSummary
		if err := rows.Scan(&imp.ID, &imp.Source, &imp.Inserted, &imp.Updated, &imp.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}
