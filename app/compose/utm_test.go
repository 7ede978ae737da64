package compose

import (
	"strings"
	"testing"
)

func TestBuildTrackedLink_AbsentBaseURL(t *testing.T) {
	result := BuildTrackedLink("", "instagram", "my-slug", "timeline_alchemy")

	if result != "" {
		t.Errorf("Expected empty link for absent base URL, got '%s'", result)
	}
}

func TestBuildTrackedLink_NoExistingQuery(t *testing.T) {
	result := BuildTrackedLink("https://example.com/blog/post", "x", "my-slug", "timeline_alchemy")

	expected := "https://example.com/blog/post?utm_source=x&utm_medium=social&utm_campaign=timeline_alchemy&utm_content=my-slug"
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestBuildTrackedLink_ExistingQueryUsesAmpersand(t *testing.T) {
	result := BuildTrackedLink("https://x.com/a?ref=1", "instagram", "my-slug", "timeline_alchemy")

	if !strings.HasPrefix(result, "https://x.com/a?ref=1&utm_source=instagram&utm_medium=social&utm_campaign=") {
		t.Errorf("Expected ampersand separator after existing query, got '%s'", result)
	}
	if !strings.HasSuffix(result, "&utm_content=my-slug") {
		t.Errorf("Expected utm_content parameter, got '%s'", result)
	}
}

func TestBuildTrackedLink_MissingSlugFallsBackToContent(t *testing.T) {
	result := BuildTrackedLink("https://example.com/post", "facebook", "", "timeline_alchemy")

	if !strings.HasSuffix(result, "utm_content=content") {
		t.Errorf("Expected literal 'content' for absent slug, got '%s'", result)
	}
}
