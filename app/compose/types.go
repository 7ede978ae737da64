package compose

// Target platforms for derivative drafts. The order is the insertion order
// used by the composer.
const (
	PlatformX         = "x"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformLinkedIn  = "linkedin"
	PlatformFacebook  = "facebook"
)

// Derivative kinds. TikTok is the only platform that gets a script-shaped
// payload; every other platform gets a caption.
const (
	KindCaption      = "caption"
	KindTikTokScript = "tiktok_script"
)

// Tone variants accepted on submission. Unknown variants fall back to calm.
const (
	VariantCalm  = "calm"
	VariantSpicy = "spicy"
)

// Source is the normalized content record the composer works from.
type Source struct {
	ID           string
	Title        string
	Slug         string
	Summary      string
	CanonicalURL string
}

// Payload is the platform-specific draft body. Caption-shaped payloads carry
// Caption and Hashtags, script-shaped payloads carry Script and Overlay.
// CTAURL is absent when the source has no canonical URL.
type Payload struct {
	Caption  string   `json:"caption,omitempty"`
	Script   string   `json:"script,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
	Overlay  []string `json:"overlay,omitempty"`
	CTAURL   string   `json:"cta_url,omitempty"`
}

// Draft is one composed derivative, not yet persisted.
type Draft struct {
	Platform string
	Kind     string
	Payload  Payload
}
