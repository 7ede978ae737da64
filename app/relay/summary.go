package relay

import (
	"log/slog"
	"strings"

	"codeberg.org/readeck/go-readability"

	"github.com/tlforge/content-forge/app/compose"
)

const derivedSummaryLength = 500

// SummaryFromHTML extracts the readable text of an HTML blog body for use as
// a source summary. Returns an empty string when nothing can be extracted;
// the caller treats that as "no summary".
func SummaryFromHTML(htmlBody string) string {
	if !strings.Contains(htmlBody, "<") {
		// Plain text already; just cap the length
		return compose.Normalize(htmlBody, derivedSummaryLength)
	}

	article, err := readability.FromReader(strings.NewReader(htmlBody), nil)
	if err != nil {
		slog.Debug("Summary extraction failed", "error", err)
		return ""
	}

	return compose.Normalize(article.TextContent, derivedSummaryLength)
}
