package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/typegen/internal/generator"
	"github.com/verte-zerg/typegen/internal/model"
)

// SavedRecord is a persisted generation that can be repeated.
type SavedRecord struct {
	ID        string
	CreatedAt time.Time
	Config    model.Config
	Record    generator.Record
}

// SaveRecord persists a generated word sequence with the config it was
// generated under and returns its new id.
func (s *Store) SaveRecord(ctx context.Context, cfg model.Config, rec generator.Record) (string, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode record config: %w", err)
	}
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO records (id, created_at, config) VALUES (?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano), string(payload),
	); err != nil {
		return "", err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO record_words (record_id, position, word, section_index) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for i, e := range rec.Entries() {
		if _, err = stmt.ExecContext(ctx, id, i, e.Word, e.SectionIndex); err != nil {
			return "", err
		}
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LoadRecord returns the record stored under id.
func (s *Store) LoadRecord(ctx context.Context, id string) (SavedRecord, error) {
	var saved SavedRecord
	var createdAt, payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, config FROM records WHERE id = ?`, id,
	).Scan(&saved.ID, &createdAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedRecord{}, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return SavedRecord{}, err
	}
	return s.fillRecord(ctx, saved, createdAt, payload)
}

// LatestRecord returns the most recently saved record.
func (s *Store) LatestRecord(ctx context.Context) (SavedRecord, error) {
	var saved SavedRecord
	var createdAt, payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, config FROM records ORDER BY created_at DESC, rowid DESC LIMIT 1`,
	).Scan(&saved.ID, &createdAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedRecord{}, fmt.Errorf("latest record: %w", ErrNotFound)
	}
	if err != nil {
		return SavedRecord{}, err
	}
	return s.fillRecord(ctx, saved, createdAt, payload)
}

func (s *Store) fillRecord(ctx context.Context, saved SavedRecord, createdAt, payload string) (SavedRecord, error) {
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return SavedRecord{}, err
	}
	saved.CreatedAt = parsed
	if err := json.Unmarshal([]byte(payload), &saved.Config); err != nil {
		return SavedRecord{}, fmt.Errorf("failed to decode record config: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT word, section_index FROM record_words WHERE record_id = ? ORDER BY position`, saved.ID)
	if err != nil {
		return SavedRecord{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []generator.Entry
	for rows.Next() {
		var e generator.Entry
		if err := rows.Scan(&e.Word, &e.SectionIndex); err != nil {
			return SavedRecord{}, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return SavedRecord{}, err
	}
	saved.Record = generator.NewRecord(entries)
	return saved, nil
}
