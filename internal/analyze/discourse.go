// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import "github.com/pdiddy/template-mimic/pkg/types"

// Text returns the discourse and content profiles of text.
func Text(text string) types.Analysis {
	return types.Analysis{
		Discourse: Discourse(text),
		Content:   Content(text),
	}
}

// Discourse segments text, assigns each sentence exactly one role, counts
// connectives and rhetorical devices over the whole text, and records each
// sentence's word count. SentenceCount always equals len(Segment(text)).
func Discourse(text string) types.DiscourseProfile {
	p := types.NewDiscourseProfile()

	sentences := Segment(text)
	p.SentenceCount = len(sentences)
	for _, s := range sentences {
		p.SentenceTypes[classifySentence(s)]++
		p.SentenceLength = append(p.SentenceLength, wordCount(s))
	}

	for _, c := range Connectives {
		p.Connectives[c.Category] = countMatches(c.Pattern, text)
	}
	for _, r := range Rhetoric {
		p.Rhetoric[r.Category] = countMatches(r.Pattern, text)
	}
	return p
}
