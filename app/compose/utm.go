package compose

import (
	"fmt"
	"strings"
)

// BuildTrackedLink appends UTM campaign parameters to a canonical URL for a
// given platform. Returns an empty string when no base URL exists, which the
// composer treats as "no call-to-action link available".
//
// Parameter values are appended as-is; slugs are URL-safe by construction and
// campaign/platform tokens are fixed identifiers.
func BuildTrackedLink(baseURL, platform, contentSlug, campaign string) string {
	if baseURL == "" {
		return ""
	}

	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}

	if contentSlug == "" {
		contentSlug = "content"
	}

	return fmt.Sprintf("%s%sutm_source=%s&utm_medium=social&utm_campaign=%s&utm_content=%s",
		baseURL, sep, platform, campaign, contentSlug)
}
