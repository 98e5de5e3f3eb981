package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/aacboard/internal/database"
)

// UtteranceRepo stores the spoken-phrase history.
type UtteranceRepo struct {
	db *sql.DB
}

func NewUtteranceRepo(db *sql.DB) *UtteranceRepo {
	return &UtteranceRepo{db: db}
}

// Insert records u, assigning an ID and timestamp when missing.
func (r *UtteranceRepo) Insert(ctx context.Context, u Utterance) (Utterance, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.SpokenAt.IsZero() {
		u.SpokenAt = database.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO utterances(id, category_key, image_key, text, spoken_at)
	VALUES (?, ?, ?, ?, ?)
	`, u.ID, u.CategoryKey, u.ImageKey, u.Text, u.SpokenAt)
	if err != nil {
		return Utterance{}, fmt.Errorf("insert utterance: %w", err)
	}
	return u, nil
}

// Recent lists the latest utterances, newest first.
func (r *UtteranceRepo) Recent(ctx context.Context, limit int) ([]Utterance, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, category_key, image_key, text, spoken_at
	FROM utterances
	ORDER BY spoken_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Utterance
	for rows.Next() {
		var u Utterance
		if err := rows.Scan(&u.ID, &u.CategoryKey, &u.ImageKey, &u.Text, &u.SpokenAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Frequent lists the most spoken phrases, ties broken by recency.
func (r *UtteranceRepo) Frequent(ctx context.Context, limit int) ([]PhraseCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT category_key, image_key, text, COUNT(*) AS n, MAX(rowid) AS last_row
	FROM utterances
	GROUP BY category_key, image_key, text
	ORDER BY n DESC, last_row DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PhraseCount
	for rows.Next() {
		var p PhraseCount
		var lastRow int64
		if err := rows.Scan(&p.CategoryKey, &p.ImageKey, &p.Text, &p.Count, &lastRow); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the number of stored utterances.
func (r *UtteranceRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM utterances`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
