package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	sentenceEnd   = regexp.MustCompile(`[.!?]\s`)
)

// SanitizeTitle trims surrounding whitespace and quotes from an LLM-generated
// title and collapses internal whitespace runs.
func SanitizeTitle(text string) string {
	sanitized := strings.TrimSpace(text)
	sanitized = strings.Trim(sanitized, `"'`)
	return whitespaceRun.ReplaceAllString(sanitized, " ")
}

// HeuristicTitle builds a title without any generative engine: the first
// sentence of the text, capped at 12 words, capitalized.
func HeuristicTitle(text string) string {
	trimmed := strings.TrimSpace(text)

	firstSentence := trimmed
	if loc := sentenceEnd.FindStringIndex(trimmed); loc != nil {
		firstSentence = trimmed[:loc[0]+1]
	}

	words := strings.Fields(firstSentence)
	if len(words) > 12 {
		words = words[:12]
	}

	return capitalize(strings.Join(words, " "))
}

// MakePreview truncates text to maxChars runes, appending an ellipsis only
// when something was cut off.
func MakePreview(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return strings.TrimRight(string(runes[:maxChars]), " \t\r\n") + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
