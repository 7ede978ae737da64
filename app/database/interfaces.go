package database

import (
	"github.com/tlforge/content-forge/app/compose"
)

type SourceRepository interface {
	CreateSource(title, slug, summary, canonicalURL string) (*Source, error)
	GetSource(id string) (*Source, error)
	ListSources(limit int) ([]Source, error)
	GetSourceCount() (int, error)
}

type DerivativeRepository interface {
	// CreateBatch persists all drafts for a source in one transaction.
	CreateBatch(sourceID string, drafts []compose.Draft) error

	// ListBySource returns non-archived derivatives ordered by platform,
	// kind, then descending creation time.
	ListBySource(sourceID string) ([]Derivative, error)

	// UpdateStatus sets a derivative's status and reports whether a row
	// was updated.
	UpdateStatus(id, status string) (bool, error)

	GetStatusCounts() (map[string]int, error)
}
