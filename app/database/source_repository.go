package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type sourceRepository struct {
	db *DB
}

func NewSourceRepository(db *DB) SourceRepository {
	return &sourceRepository{db: db}
}

func (r *sourceRepository) CreateSource(title, slug, summary, canonicalURL string) (*Source, error) {
	source := &Source{
		ID:           uuid.NewString(),
		Title:        title,
		Slug:         slug,
		Summary:      summary,
		CanonicalURL: canonicalURL,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.Exec(`
		INSERT INTO content_sources (id, title, slug, summary, canonical_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, source.ID, source.Title, source.Slug, source.Summary, source.CanonicalURL, source.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}

	return source, nil
}

func (r *sourceRepository) GetSource(id string) (*Source, error) {
	var source Source
	err := r.db.QueryRow(`
		SELECT id, title, slug, summary, canonical_url, created_at
		FROM content_sources
		WHERE id = ?
	`, id).Scan(&source.ID, &source.Title, &source.Slug, &source.Summary,
		&source.CanonicalURL, &source.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return &source, nil
}

func (r *sourceRepository) ListSources(limit int) ([]Source, error) {
	rows, err := r.db.Query(`
		SELECT id, title, slug, summary, canonical_url, created_at
		FROM content_sources
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		var source Source
		err := rows.Scan(&source.ID, &source.Title, &source.Slug, &source.Summary,
			&source.CanonicalURL, &source.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		sources = append(sources, source)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source rows: %w", err)
	}

	return sources, nil
}

func (r *sourceRepository) GetSourceCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM content_sources").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get source count: %w", err)
	}
	return count, nil
}
