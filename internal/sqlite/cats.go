// This file implements the cat CRUD operations for the SQLite backend.
// Each operation hydrates/dehydrates between SQLite rows and *types.Cat
// structs, and persists changes to cats.jsonl atomically.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shelterpaws/cattery/pkg/types"
)

// timeLayout is the timestamp format stored in SQLite and JSONL.
// Nanosecond precision keeps creation order stable for newest-first lists.
const timeLayout = time.RFC3339Nano

// List returns every stored cat, newest first by creation time.
func (b *Backend) List(ctx context.Context) ([]*types.Cat, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	rows, err := b.db.QueryContext(ctx,
		"SELECT cat_id, name, location_id, shelter_entry_year, about, created_at, updated_at FROM cats ORDER BY created_at DESC, cat_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying cats: %w", err)
	}
	defer rows.Close()

	cats := []*types.Cat{}
	for rows.Next() {
		cat, err := scanCat(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cat: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cats: %w", err)
	}

	for _, cat := range cats {
		if err := b.hydrateMedia(ctx, cat); err != nil {
			return nil, err
		}
	}
	return cats, nil
}

// Get retrieves a cat by ID and hydrates its media gallery.
func (b *Backend) Get(ctx context.Context, id string) (*types.Cat, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRowContext(ctx,
		"SELECT cat_id, name, location_id, shelter_entry_year, about, created_at, updated_at FROM cats WHERE cat_id = ?",
		id,
	)
	cat, err := scanCat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting cat %s: %w", id, err)
	}
	if err := b.hydrateMedia(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Insert adds a new cat. When cat.ID is empty a UUID v7 is generated and
// written back to the struct. Returns ErrDuplicateID if the ID is taken.
func (b *Backend) Insert(ctx context.Context, cat *types.Cat) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if cat == nil {
		return types.ErrInvalidData
	}

	if cat.ID == "" {
		cat.ID = generateID()
	}

	exists, err := b.catExists(ctx, cat.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("inserting cat %s: %w", cat.ID, types.ErrDuplicateID)
	}

	now := time.Now().UTC()
	if cat.CreatedAt.IsZero() {
		cat.CreatedAt = now
	}
	cat.UpdatedAt = now

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO cats (cat_id, name, location_id, shelter_entry_year, about, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		cat.ID, cat.Name, cat.LocationID, cat.Description.ShelterEntryYear, cat.Description.About,
		cat.CreatedAt.Format(timeLayout), cat.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("persisting cat: %w", err)
	}
	if err := replaceMediaTx(ctx, tx, cat.ID, cat.Media); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cat: %w", err)
	}

	if err := b.persistCatsJSONL(ctx); err != nil {
		return fmt.Errorf("persisting cats.jsonl: %w", err)
	}
	return nil
}

// Update replaces the stored cat sharing the same ID in full. The ID never
// changes; all other fields are fully replaced, not merged.
func (b *Backend) Update(ctx context.Context, cat *types.Cat) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if cat == nil {
		return types.ErrInvalidData
	}
	if cat.ID == "" {
		return types.ErrInvalidID
	}

	// The stored creation time survives the update and is written back
	// into the struct, so the caller's copy matches a subsequent Get.
	var createdAt string
	err := b.db.QueryRowContext(ctx, "SELECT created_at FROM cats WHERE cat_id = ?", cat.ID).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("updating cat %s: %w", cat.ID, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking cat existence: %w", err)
	}
	if cat.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}

	cat.UpdatedAt = time.Now().UTC()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"UPDATE cats SET name = ?, location_id = ?, shelter_entry_year = ?, about = ?, updated_at = ? WHERE cat_id = ?",
		cat.Name, cat.LocationID, cat.Description.ShelterEntryYear, cat.Description.About,
		cat.UpdatedAt.Format(timeLayout), cat.ID,
	)
	if err != nil {
		return fmt.Errorf("persisting cat: %w", err)
	}
	if err := replaceMediaTx(ctx, tx, cat.ID, cat.Media); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cat: %w", err)
	}

	if err := b.persistCatsJSONL(ctx); err != nil {
		return fmt.Errorf("persisting cats.jsonl: %w", err)
	}
	return nil
}

// Delete removes a cat and its media rows. Deleting an ID that does not
// exist is a no-op, matching the declined-confirmation path in the UI.
func (b *Backend) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	exists, err := b.catExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cat_media WHERE cat_id = ?", id); err != nil {
		return fmt.Errorf("deleting cat media: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM cats WHERE cat_id = ?", id); err != nil {
		return fmt.Errorf("deleting cat: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cat deletion: %w", err)
	}

	if err := b.persistCatsJSONL(ctx); err != nil {
		return fmt.Errorf("persisting cats.jsonl: %w", err)
	}
	return nil
}

// catExists reports whether a row with the given ID is present.
func (b *Backend) catExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := b.db.QueryRowContext(ctx, "SELECT 1 FROM cats WHERE cat_id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking cat existence: %w", err)
	}
	return true, nil
}

// replaceMediaTx rewrites the media rows for a cat inside the given
// transaction, preserving gallery order through the ordinal column.
func replaceMediaTx(ctx context.Context, tx *sql.Tx, catID string, media []types.MediaItem) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM cat_media WHERE cat_id = ?", catID); err != nil {
		return fmt.Errorf("clearing media rows: %w", err)
	}
	for i, item := range media {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO cat_media (cat_id, ordinal, kind, content) VALUES (?, ?, ?, ?)",
			catID, i, item.Kind, item.Content,
		)
		if err != nil {
			return fmt.Errorf("persisting media row %d: %w", i, err)
		}
	}
	return nil
}

// hydrateMedia loads the media gallery for a cat in ordinal order.
func (b *Backend) hydrateMedia(ctx context.Context, cat *types.Cat) error {
	rows, err := b.db.QueryContext(ctx,
		"SELECT kind, content FROM cat_media WHERE cat_id = ? ORDER BY ordinal ASC",
		cat.ID,
	)
	if err != nil {
		return fmt.Errorf("querying media for cat %s: %w", cat.ID, err)
	}
	defer rows.Close()

	var media []types.MediaItem
	for rows.Next() {
		var item types.MediaItem
		if err := rows.Scan(&item.Kind, &item.Content); err != nil {
			return fmt.Errorf("scanning media row: %w", err)
		}
		media = append(media, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating media rows: %w", err)
	}
	cat.Media = media
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCat hydrates one cats row into a *types.Cat (media excluded).
func scanCat(row rowScanner) (*types.Cat, error) {
	var cat types.Cat
	var createdAt, updatedAt string
	err := row.Scan(&cat.ID, &cat.Name, &cat.LocationID,
		&cat.Description.ShelterEntryYear, &cat.Description.About,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if cat.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if cat.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &cat, nil
}
