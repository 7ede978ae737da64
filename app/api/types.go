package api

import (
	"context"

	"github.com/tlforge/content-forge/app/database"
	"github.com/tlforge/content-forge/app/forge"
	"github.com/tlforge/content-forge/app/relay"
)

// RelayClientInterface is the outbound automation webhook surface the
// handlers depend on.
type RelayClientInterface interface {
	Forward(ctx context.Context, body []byte) (*relay.Response, error)
}

var _ RelayClientInterface = (*relay.Client)(nil)

type Handler struct {
	sourceRepo     database.SourceRepository
	derivativeRepo database.DerivativeRepository
	writer         *forge.Writer
	relayClient    RelayClientInterface
}

type CreateSourceRequest struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Summary      string `json:"summary"`
	CanonicalURL string `json:"canonical_url"`
	// Older submission clients send camelCase
	CanonicalURLAlt string `json:"canonicalUrl"`
	Variant         string `json:"variant"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ForgeRequest struct {
	Prompt  string `json:"prompt"`
	Variant string `json:"variant"`
}
