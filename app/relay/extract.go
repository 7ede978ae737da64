package relay

import (
	"strings"
)

// SourceFields is the best-effort mapping of an automation response to a
// source-creation request. Empty fields mean the payload had no usable value.
type SourceFields struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Summary      string `json:"summary"`
	CanonicalURL string `json:"canonical_url"`
}

// Extraction rules, evaluated in order; the first non-empty match wins.
// Automation pipelines put the same fields in different places depending on
// the workflow revision, so every known location is listed.
var (
	titlePaths     = []string{"title", "blog.title", "meta.title"}
	slugPaths      = []string{"slug", "blog.slug"}
	summaryPaths   = []string{"summary", "blog.summary", "meta.description"}
	canonicalPaths = []string{"canonical_url", "canonicalUrl", "blog.canonical_url", "meta.url"}
	bodyPaths      = []string{"blog.content", "content", "blog"}
)

// Extract maps a decoded automation payload to source fields. When the
// payload carries no summary but does carry an HTML blog body, a summary is
// derived from the body's readable text.
func Extract(payload any) SourceFields {
	fields := SourceFields{
		Title:        firstString(payload, titlePaths...),
		Slug:         firstString(payload, slugPaths...),
		Summary:      firstString(payload, summaryPaths...),
		CanonicalURL: firstString(payload, canonicalPaths...),
	}

	if fields.Summary == "" {
		if body := firstString(payload, bodyPaths...); body != "" {
			fields.Summary = SummaryFromHTML(body)
		}
	}

	return fields
}

// firstString evaluates dotted key paths against the payload in order and
// returns the first non-empty string value.
func firstString(payload any, paths ...string) string {
	for _, path := range paths {
		value, ok := lookupPath(payload, path)
		if !ok {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// lookupPath descends a decoded JSON value along a dotted key path.
func lookupPath(payload any, path string) (any, bool) {
	current := payload
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
