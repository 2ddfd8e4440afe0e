package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded conversion.
type Entry struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// Record stores entry with a fresh ID and timestamp and returns the stored
// copy.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if strings.TrimSpace(entry.Category) == "" || strings.TrimSpace(entry.From) == "" || strings.TrimSpace(entry.To) == "" {
		return Entry{}, errors.New("history entry requires category and units")
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.execWithRetry(ctx,
		`INSERT INTO conversions (id, category, from_unit, to_unit, input, output, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Category,
		entry.From,
		entry.To,
		entry.Input,
		entry.Output,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert conversion: %w", err)
	}
	return entry, nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, from_unit, to_unit, input, output, created_at
        FROM conversions ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.Category, &entry.From, &entry.To, &entry.Input, &entry.Output, &createdAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		if entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ensureContext(ctx), "SELECT COUNT(1) FROM conversions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count conversions: %w", err)
	}
	return count, nil
}

// Clear removes every entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, "DELETE FROM conversions")
	if err != nil {
		return 0, fmt.Errorf("clear conversions: %w", err)
	}
	return res.RowsAffected()
}
