package overlay

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/handiism/hurufa/internal/model"
)

// Record is the user's edits for one font identity.
type Record struct {
	ID        string
	Tags      []string
	Language  string
	UpdatedAt time.Time
}

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Save upserts the tags and language of every font in one transaction.
// The Uncategorized placeholder is not stored.
func (r *Repo) Save(ctx context.Context, fonts []model.Font) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin overlay save: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO font_overlay (identity, tags, language, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(identity) DO UPDATE SET
			tags = excluded.tags,
			language = excluded.language,
			updated_at = CURRENT_TIMESTAMP
		WHERE font_overlay.tags <> excluded.tags OR font_overlay.language <> excluded.language
	`)
	if err != nil {
		return fmt.Errorf("prepare overlay upsert: %w", err)
	}
	defer stmt.Close()

	for _, f := range fonts {
		tags := slices.DeleteFunc(slices.Clone(f.Tags), func(t string) bool { return t == model.Uncategorized })
		if tags == nil {
			tags = []string{}
		}
		encoded, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("encode tags for %s: %w", f.ID(), err)
		}
		if _, err := stmt.ExecContext(ctx, f.ID(), string(encoded), f.Language); err != nil {
			return fmt.Errorf("upsert overlay %s: %w", f.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit overlay save: %w", err)
	}
	return nil
}

// Load returns every stored record keyed by identity.
func (r *Repo) Load(ctx context.Context) (map[string]Record, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT identity, tags, language, updated_at
		FROM font_overlay
	`)
	if err != nil {
		return nil, fmt.Errorf("query overlay: %w", err)
	}
	defer rows.Close()

	out := make(map[string]Record)
	for rows.Next() {
		var (
			rec  Record
			tags string
		)
		if err := rows.Scan(&rec.ID, &tags, &rec.Language, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan overlay: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for %s: %w", rec.ID, err)
		}
		out[rec.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overlay: %w", err)
	}
	return out, nil
}

// Delete forgets the record for id.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM font_overlay
		WHERE identity = ?
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete overlay: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Apply returns copies of fonts with stored tags and language laid over
// them. Fonts without a record, and empty stored languages, are left as
// they are.
func Apply(fonts []model.Font, records map[string]Record) []model.Font {
	out := make([]model.Font, len(fonts))
	for i, f := range fonts {
		f = f.Clone()
		if rec, ok := records[f.ID()]; ok {
			f.Tags = slices.Clone(rec.Tags)
			if rec.Language != "" {
				f.Language = rec.Language
			}
		}
		out[i] = f
	}
	return out
}
