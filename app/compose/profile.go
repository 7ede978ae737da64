package compose

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Hashtag policies. The policy is a deployment-wide choice made in the
// profile file, not a per-request parameter.
const (
	HashtagPolicyFixed = "fixed"
	HashtagPolicySlug  = "slug"
)

// Profile holds the editorial configuration of the composer: campaign
// tagging, hashtag policy and the copy lines used in script payloads.
type Profile struct {
	Campaign string `yaml:"campaign"`
	ReadMore string `yaml:"read_more"`

	Hashtags struct {
		Policy string   `yaml:"policy"`
		Fixed  []string `yaml:"fixed"`
	} `yaml:"hashtags"`

	Script struct {
		CTALabel    string            `yaml:"cta_label"`
		Placeholder string            `yaml:"placeholder"`
		Hooks       map[string]string `yaml:"hooks"`
	} `yaml:"script"`
}

// LoadProfile reads the composer profile from a YAML file. An empty path
// yields the built-in defaults, so the file is optional.
func LoadProfile(path string) (*Profile, error) {
	profile := &Profile{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}

		if err := yaml.Unmarshal(data, profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
		}
	}

	setProfileDefaults(profile)

	if err := validateProfile(profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return profile, nil
}

func setProfileDefaults(p *Profile) {
	if p.Campaign == "" {
		p.Campaign = "timeline_alchemy"
	}
	if p.ReadMore == "" {
		p.ReadMore = "Read more:"
	}
	if p.Hashtags.Policy == "" {
		p.Hashtags.Policy = HashtagPolicyFixed
	}
	if len(p.Hashtags.Fixed) == 0 {
		p.Hashtags.Fixed = []string{"#presence", "#nonduality", "#inneralchemy"}
	}
	if p.Script.CTALabel == "" {
		p.Script.CTALabel = "CTA:"
	}
	if p.Script.Placeholder == "" {
		p.Script.Placeholder = "One idea, one breath, one small step."
	}
	if p.Script.Hooks == nil {
		p.Script.Hooks = map[string]string{}
	}
	if p.Script.Hooks[VariantCalm] == "" {
		p.Script.Hooks[VariantCalm] = "What if doing less is the real work?"
	}
	if p.Script.Hooks[VariantSpicy] == "" {
		p.Script.Hooks[VariantSpicy] = "What if fixing is the thing keeping you stuck?"
	}
}

func validateProfile(p *Profile) error {
	if p.Hashtags.Policy != HashtagPolicyFixed && p.Hashtags.Policy != HashtagPolicySlug {
		return fmt.Errorf("unknown hashtag policy: %s", p.Hashtags.Policy)
	}
	return nil
}
