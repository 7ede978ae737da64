package compose

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	result := Normalize("  hello \t  world\n\nagain  ", 100)

	if result != "hello world again" {
		t.Errorf("Expected 'hello world again', got '%s'", result)
	}
	if strings.Contains(result, "  ") {
		t.Error("Normalized text should not contain double-space runs")
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if result := Normalize("", 100); result != "" {
		t.Errorf("Expected empty string, got '%s'", result)
	}
	if result := Normalize("   \t\n  ", 100); result != "" {
		t.Errorf("Whitespace-only input should normalize to empty, got '%s'", result)
	}
}

func TestNormalize_TruncatesWithEllipsis(t *testing.T) {
	result := Normalize("this is a fairly long sentence that needs trimming", 20)

	if utf8.RuneCountInString(result) != 20 {
		t.Errorf("Expected 20 runes, got %d: '%s'", utf8.RuneCountInString(result), result)
	}
	if !strings.HasSuffix(result, "…") {
		t.Errorf("Truncated text should end with an ellipsis, got '%s'", result)
	}
}

func TestNormalize_ShortInputUnchanged(t *testing.T) {
	result := Normalize("short", 180)

	if result != "short" {
		t.Errorf("Expected 'short', got '%s'", result)
	}
}

func TestNormalize_NeverExceedsBudget(t *testing.T) {
	inputs := []string{
		"a",
		"exactly twenty chars",
		strings.Repeat("word ", 200),
		"unicode café naïve résumé " + strings.Repeat("x", 300),
	}

	for _, input := range inputs {
		for _, max := range []int{5, 40, 180, 500} {
			result := Normalize(input, max)
			if utf8.RuneCountInString(result) > max {
				t.Errorf("Normalize(%q, %d) produced %d runes", input, max, utf8.RuneCountInString(result))
			}
		}
	}
}
