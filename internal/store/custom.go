package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/typegen/internal/model"
)

const pipeSeparator = "|"

// SaveCustomText creates or replaces the custom text stored under ct.Name.
func (s *Store) SaveCustomText(ctx context.Context, ct model.CustomText) error {
	name := strings.TrimSpace(ct.Name)
	if name == "" {
		return fmt.Errorf("custom text name is empty")
	}
	sep := " "
	if ct.Pipe {
		sep = pipeSeparator
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_texts (name, text, mode, limit_mode, limit_value, pipe, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			text = excluded.text,
			mode = excluded.mode,
			limit_mode = excluded.limit_mode,
			limit_value = excluded.limit_value,
			pipe = excluded.pipe,
			updated_at = excluded.updated_at`,
		name,
		strings.Join(ct.Words, sep),
		string(ct.Mode),
		string(ct.LimitMode),
		ct.LimitValue,
		ct.Pipe,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// GetCustomText loads the custom text stored under name.
func (s *Store) GetCustomText(ctx context.Context, name string) (model.CustomText, error) {
	ct := model.CustomText{Name: name}
	var text, mode, limitMode string
	err := s.db.QueryRowContext(ctx,
		`SELECT text, mode, limit_mode, limit_value, pipe FROM custom_texts WHERE name = ?`, name,
	).Scan(&text, &mode, &limitMode, &ct.LimitValue, &ct.Pipe)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CustomText{}, fmt.Errorf("custom text %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return model.CustomText{}, err
	}
	ct.Mode = model.CustomTextMode(mode)
	ct.LimitMode = model.CustomLimitMode(limitMode)
	ct.Words = model.ParseCustomText(text, ct.Pipe)
	return ct, nil
}

// ListCustomTexts returns the names of stored custom texts.
func (s *Store) ListCustomTexts(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM custom_texts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// DeleteCustomText removes the custom text stored under name.
func (s *Store) DeleteCustomText(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM custom_texts WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("custom text %q: %w", name, ErrNotFound)
	}
	return nil
}

// AddFavorite marks a quote as a favorite for lang.
func (s *Store) AddFavorite(ctx context.Context, lang string, quoteID int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO quote_favorites (lang, quote_id, added_at) VALUES (?, ?, ?)`,
		lang, quoteID, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// RemoveFavorite unmarks a favorite quote.
func (s *Store) RemoveFavorite(ctx context.Context, lang string, quoteID int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM quote_favorites WHERE lang = ? AND quote_id = ?`, lang, quoteID)
	return err
}

// ListFavorites returns the favorite quote ids for lang in ascending order.
func (s *Store) ListFavorites(ctx context.Context, lang string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT quote_id FROM quote_favorites WHERE lang = ? ORDER BY quote_id`, lang)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
