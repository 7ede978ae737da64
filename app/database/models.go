package database

import (
	"encoding/json"
	"time"
)

// Derivative statuses. A derivative starts at draft; the dashboard moves it
// to approved or archived.
const (
	StatusDraft     = "draft"
	StatusReview    = "review"
	StatusApproved  = "approved"
	StatusScheduled = "scheduled"
	StatusPosted    = "posted"
	StatusArchived  = "archived"
)

// Source represents a content_sources record.
type Source struct {
	ID           string
	Title        string
	Slug         string
	Summary      string
	CanonicalURL string
	CreatedAt    time.Time
}

// Derivative represents a content_derivatives record. Payload is the
// platform-specific draft body stored as JSON.
type Derivative struct {
	ID        string
	SourceID  string
	Platform  string
	Kind      string
	Status    string
	Payload   json.RawMessage
	CreatedAt time.Time
}
