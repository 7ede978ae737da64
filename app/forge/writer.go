package forge

import (
	"fmt"
	"log/slog"

	"github.com/tlforge/content-forge/app/compose"
	"github.com/tlforge/content-forge/app/database"
)

const (
	titleMaxLength   = 180
	summaryMaxLength = 500
)

// ValidationError marks a creation request rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Input is one source-creation request.
type Input struct {
	Title        string
	Slug         string
	Summary      string
	CanonicalURL string
	Variant      string
}

// Writer persists one content source together with its five platform
// derivatives: normalize input, insert the source row, compose the drafts,
// insert them as a single batch.
type Writer struct {
	sources     database.SourceRepository
	derivatives database.DerivativeRepository
	composer    *compose.Composer
}

func NewWriter(sources database.SourceRepository, derivatives database.DerivativeRepository,
	composer *compose.Composer) *Writer {
	return &Writer{
		sources:     sources,
		derivatives: derivatives,
		composer:    composer,
	}
}

// CreateSource runs the full creation flow and returns the new source ID.
// A derivative batch failure after the source insert leaves the committed
// source row in place (orphaned source, zero derivatives); the dashboard
// tolerates that state and the error is surfaced to the caller.
func (w *Writer) CreateSource(input Input) (string, error) {
	title := compose.Normalize(input.Title, titleMaxLength)
	if title == "" {
		return "", &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	summary := compose.Normalize(input.Summary, summaryMaxLength)

	slug := input.Slug
	if slug == "" {
		slug = compose.Slugify(title)
	}

	source, err := w.sources.CreateSource(title, slug, summary, input.CanonicalURL)
	if err != nil {
		return "", fmt.Errorf("failed to persist source: %w", err)
	}

	drafts := w.composer.Run(compose.Source{
		ID:           source.ID,
		Title:        source.Title,
		Slug:         source.Slug,
		Summary:      source.Summary,
		CanonicalURL: source.CanonicalURL,
	}, input.Variant)

	if err := w.derivatives.CreateBatch(source.ID, drafts); err != nil {
		slog.Error("Derivative batch failed after source commit",
			"source_id", source.ID, "error", err)
		return "", fmt.Errorf("failed to persist derivatives: %w", err)
	}

	slog.Info("Source created", "source_id", source.ID, "slug", source.Slug,
		"derivatives", len(drafts))

	return source.ID, nil
}
