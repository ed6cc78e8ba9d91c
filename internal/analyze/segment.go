// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze derives discourse and content profiles from paragraph text.
// Analysis is pattern-based: no tokenizer, parser or language model is
// involved, and every function here is pure.
package analyze

import (
	"regexp"
	"strings"
)

// sentenceBoundary is a terminal mark followed by whitespace. Abbreviations
// are not special-cased, so "Mr. Smith" yields two fragments.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// Segment splits text into sentence units in textual order. The boundary
// mark and the whitespace after it are consumed; the final sentence keeps
// its terminal mark. Empty or whitespace-only text yields an empty slice.
func Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	parts := sentenceBoundary.Split(text, -1)

	// Text ending in ". " leaves an empty trailing element.
	if n := len(parts); n > 0 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}
	return parts
}

// wordCount counts whitespace-separated tokens.
func wordCount(sentence string) int {
	return len(strings.Fields(sentence))
}
