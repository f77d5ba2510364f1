package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"v0promptgen/internal/types"
)

// Upper bound on the slice preallocated by ListRecords.
const listCapacityHint = 100

// Fixed-width so that created_at sorts lexicographically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SaveRecord inserts a prompt record, assigning an ID and timestamp when unset.
func (db *DB) SaveRecord(ctx context.Context, rec types.PromptRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	query := `
	INSERT INTO prompt_records (id, category, style, mood, palette, fonts, custom_requirement, generated_text, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		rec.ID,
		rec.Category,
		rec.Style,
		rec.Mood,
		rec.Palette,
		rec.Fonts,
		rec.CustomRequirement,
		rec.Text,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert prompt record %s: %w", rec.ID, err)
	}
	return nil
}

// ListRecords returns up to limit records, newest first. A non-positive limit
// returns no records.
func (db *DB) ListRecords(ctx context.Context, limit int) ([]types.PromptRecord, error) {
	if limit <= 0 {
		return []types.PromptRecord{}, nil
	}

	query := `
	SELECT id, category, style, mood, palette, fonts, custom_requirement, generated_text, created_at
	FROM prompt_records
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?
	`

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query prompt records: %w", err)
	}
	defer rows.Close()

	records := make([]types.PromptRecord, 0, min(limit, listCapacityHint))
	for rows.Next() {
		var (
			rec       types.PromptRecord
			createdAt string
		)
		err := rows.Scan(
			&rec.ID,
			&rec.Category,
			&rec.Style,
			&rec.Mood,
			&rec.Palette,
			&rec.Fonts,
			&rec.CustomRequirement,
			&rec.Text,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at of record %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
