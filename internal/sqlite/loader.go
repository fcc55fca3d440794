// This file moves cat records between cats.jsonl and the SQLite tables:
// loading on Attach, dumping after every mutation.
package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// catRecord is the JSONL wire form of one cat, media embedded in gallery
// order. Timestamps are timeLayout strings.
type catRecord struct {
	CatID            string        `json:"cat_id"`
	Name             string        `json:"name"`
	LocationID       string        `json:"location_id"`
	ShelterEntryYear int           `json:"shelter_entry_year"`
	About            string        `json:"about"`
	Media            []mediaRecord `json:"media"`
	CreatedAt        string        `json:"created_at"`
	UpdatedAt        string        `json:"updated_at"`
}

// mediaRecord is the JSONL wire form of one gallery entry.
type mediaRecord struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// loadCatsJSONL reads cats.jsonl and inserts every record into the fresh
// SQLite schema. Records that fail to unmarshal are skipped, matching the
// malformed-line policy of readJSONL.
func (b *Backend) loadCatsJSONL() error {
	raw, err := readJSONL(filepath.Join(b.config.DataDir, catsJSONLName))
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, line := range raw {
		var rec catRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if rec.CatID == "" {
			continue
		}
		_, err = tx.Exec(
			"INSERT OR REPLACE INTO cats (cat_id, name, location_id, shelter_entry_year, about, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			rec.CatID, rec.Name, rec.LocationID, rec.ShelterEntryYear, rec.About, rec.CreatedAt, rec.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("loading cat %s: %w", rec.CatID, err)
		}
		if _, err := tx.Exec("DELETE FROM cat_media WHERE cat_id = ?", rec.CatID); err != nil {
			return fmt.Errorf("clearing media for cat %s: %w", rec.CatID, err)
		}
		for i, m := range rec.Media {
			_, err := tx.Exec(
				"INSERT INTO cat_media (cat_id, ordinal, kind, content) VALUES (?, ?, ?, ?)",
				rec.CatID, i, m.Kind, m.Content,
			)
			if err != nil {
				return fmt.Errorf("loading media %d for cat %s: %w", i, rec.CatID, err)
			}
		}
	}

	return tx.Commit()
}

// persistCatsJSONL dumps every cat row, media embedded, to cats.jsonl
// atomically. The caller must hold b.mu.
func (b *Backend) persistCatsJSONL(ctx context.Context) error {
	rows, err := b.db.QueryContext(ctx,
		"SELECT cat_id, name, location_id, shelter_entry_year, about, created_at, updated_at FROM cats ORDER BY created_at ASC, cat_id ASC",
	)
	if err != nil {
		return fmt.Errorf("querying cats for JSONL: %w", err)
	}
	defer rows.Close()

	var recs []catRecord
	for rows.Next() {
		var rec catRecord
		if err := rows.Scan(&rec.CatID, &rec.Name, &rec.LocationID, &rec.ShelterEntryYear, &rec.About, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning cat for JSONL: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating cats for JSONL: %w", err)
	}
	rows.Close()

	for i := range recs {
		mediaRows, err := b.db.QueryContext(ctx,
			"SELECT kind, content FROM cat_media WHERE cat_id = ? ORDER BY ordinal ASC",
			recs[i].CatID,
		)
		if err != nil {
			return fmt.Errorf("querying media for JSONL: %w", err)
		}
		for mediaRows.Next() {
			var m mediaRecord
			if err := mediaRows.Scan(&m.Kind, &m.Content); err != nil {
				mediaRows.Close()
				return fmt.Errorf("scanning media for JSONL: %w", err)
			}
			recs[i].Media = append(recs[i].Media, m)
		}
		if err := mediaRows.Err(); err != nil {
			mediaRows.Close()
			return fmt.Errorf("iterating media for JSONL: %w", err)
		}
		mediaRows.Close()
	}

	lines := make([]json.RawMessage, 0, len(recs))
	for _, rec := range recs {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling cat %s: %w", rec.CatID, err)
		}
		lines = append(lines, data)
	}

	return writeJSONL(filepath.Join(b.config.DataDir, catsJSONLName), lines)
}
