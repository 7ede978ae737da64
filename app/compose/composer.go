package compose

import (
	"strings"
)

const overlaySummaryLength = 40
const maxSlugHashtags = 3

// platformKinds is the fixed platform/kind table every source is expanded
// against, in insertion order.
var platformKinds = []struct {
	Platform string
	Kind     string
}{
	{PlatformX, KindCaption},
	{PlatformInstagram, KindCaption},
	{PlatformTikTok, KindTikTokScript},
	{PlatformLinkedIn, KindCaption},
	{PlatformFacebook, KindCaption},
}

// Composer turns one normalized source into five platform-tagged derivative
// drafts. It is a pure transform; persistence is the caller's job.
type Composer struct {
	profile *Profile
}

func NewComposer(profile *Profile) *Composer {
	return &Composer{profile: profile}
}

// Run composes one draft per platform/kind pair. Deterministic for a given
// source, variant and profile.
func (c *Composer) Run(src Source, variant string) []Draft {
	drafts := make([]Draft, 0, len(platformKinds))

	for _, pk := range platformKinds {
		link := BuildTrackedLink(src.CanonicalURL, pk.Platform, src.Slug, c.profile.Campaign)

		var payload Payload
		if pk.Kind == KindTikTokScript {
			payload = c.scriptPayload(src, variant, link)
		} else {
			payload = c.captionPayload(src, link)
		}

		drafts = append(drafts, Draft{
			Platform: pk.Platform,
			Kind:     pk.Kind,
			Payload:  payload,
		})
	}

	return drafts
}

func (c *Composer) captionPayload(src Source, link string) Payload {
	caption := src.Summary
	if caption == "" {
		caption = src.Title
	}
	if link != "" {
		caption += "\n→ " + c.profile.ReadMore + " " + link
	}

	return Payload{
		Caption:  caption,
		Hashtags: c.hashtags(src.Slug),
		CTAURL:   link,
	}
}

func (c *Composer) scriptPayload(src Source, variant, link string) Payload {
	hook := c.profile.Script.Hooks[variant]
	if hook == "" {
		hook = c.profile.Script.Hooks[VariantCalm]
	}

	summary := src.Summary
	if summary == "" {
		summary = c.profile.Script.Placeholder
	}

	lines := []string{
		hook + " " + src.Title,
		summary,
		strings.TrimSpace(c.profile.Script.CTALabel + " " + link),
	}

	overlay := []string{src.Title}
	if src.Summary != "" {
		overlay = append(overlay, Normalize(src.Summary, overlaySummaryLength))
	}

	return Payload{
		Script:  strings.Join(lines, "\n"),
		Overlay: overlay,
		CTAURL:  link,
	}
}

func (c *Composer) hashtags(slug string) []string {
	if c.profile.Hashtags.Policy == HashtagPolicyFixed {
		tags := make([]string, len(c.profile.Hashtags.Fixed))
		copy(tags, c.profile.Hashtags.Fixed)
		return tags
	}

	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})

	tags := make([]string, 0, maxSlugHashtags)
	for _, word := range words {
		if len(tags) == maxSlugHashtags {
			break
		}
		tag := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, strings.ToLower(word))
		if tag == "" {
			continue
		}
		tags = append(tags, "#"+tag)
	}

	return tags
}
