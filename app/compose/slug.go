package compose

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugMaxLength = 80

// slugFallbackPrefix is combined with a base-36 timestamp when a title
// slugifies to nothing (e.g. purely symbolic titles).
const slugFallbackPrefix = "content-"

// Slugify derives a URL-safe identifier from a title: accents are stripped
// via Unicode decomposition, the result is lowercased, and every run of
// non-alphanumeric characters becomes a single hyphen. Never returns an
// empty string.
func Slugify(title string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(chain, title)
	if err != nil {
		ascii = title
	}

	var b strings.Builder
	b.Grow(len(ascii))

	lastWasHyphen := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasHyphen = false
		default:
			if !lastWasHyphen {
				b.WriteRune('-')
				lastWasHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > slugMaxLength {
		slug = strings.TrimRight(slug[:slugMaxLength], "-")
	}

	if slug == "" {
		return slugFallbackPrefix + strconv.FormatInt(time.Now().UnixMilli(), 36)
	}

	return slug
}
