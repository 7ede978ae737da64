package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tlforge/content-forge/app/compose"
)

type derivativeRepository struct {
	db *DB
}

func NewDerivativeRepository(db *DB) DerivativeRepository {
	return &derivativeRepository{db: db}
}

func (r *derivativeRepository) CreateBatch(sourceID string, drafts []compose.Draft) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO content_derivatives (id, source_id, platform, kind, status, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare derivative insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, draft := range drafts {
		payload, err := json.Marshal(draft.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload for %s: %w", draft.Platform, err)
		}

		_, err = stmt.Exec(uuid.NewString(), sourceID, draft.Platform, draft.Kind,
			StatusDraft, string(payload), now)
		if err != nil {
			return fmt.Errorf("failed to insert derivative for %s: %w", draft.Platform, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit derivative batch: %w", err)
	}

	return nil
}

func (r *derivativeRepository) ListBySource(sourceID string) ([]Derivative, error) {
	rows, err := r.db.Query(`
		SELECT id, source_id, platform, kind, status, payload, created_at
		FROM content_derivatives
		WHERE source_id = ?
		  AND status IN (?, ?, ?, ?, ?)
		ORDER BY platform ASC, kind ASC, created_at DESC
	`, sourceID, StatusDraft, StatusReview, StatusApproved, StatusScheduled, StatusPosted)
	if err != nil {
		return nil, fmt.Errorf("failed to list derivatives: %w", err)
	}
	defer rows.Close()

	derivatives := make([]Derivative, 0)
	for rows.Next() {
		var d Derivative
		var payload string
		err := rows.Scan(&d.ID, &d.SourceID, &d.Platform, &d.Kind, &d.Status,
			&payload, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan derivative row: %w", err)
		}
		d.Payload = json.RawMessage(payload)
		derivatives = append(derivatives, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating derivative rows: %w", err)
	}

	return derivatives, nil
}

func (r *derivativeRepository) UpdateStatus(id, status string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE content_derivatives
		SET status = ?
		WHERE id = ?
	`, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update derivative status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check update result: %w", err)
	}

	return affected > 0, nil
}

func (r *derivativeRepository) GetStatusCounts() (map[string]int, error) {
	rows, err := r.db.Query(`
		SELECT status, COUNT(*)
		FROM content_derivatives
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}

	return counts, nil
}
