// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/template-mimic/pkg/types"
)

const (
	minConceptLength = 3
	coreConceptCount = 3
	relatedEnd       = 8
)

var alphaRun = regexp.MustCompile(`[A-Za-z]+`)

// wordFreq is one entry of the concept frequency table.
type wordFreq struct {
	word  string
	count int
}

// Content ranks concepts by frequency, measures argument polarity, and
// classifies the logical flow of text.
func Content(text string) types.ContentProfile {
	p := types.NewContentProfile()

	ranked := rankConcepts(text)
	for i, wf := range ranked {
		switch {
		case i < coreConceptCount:
			p.CoreConcepts = append(p.CoreConcepts, wf.word)
		case i < relatedEnd:
			p.RelatedConcepts = append(p.RelatedConcepts, wf.word)
		}
	}

	p.ArgumentDirection = argumentDirection(text)
	p.LogicalFlow = classifyFlow(text)
	return p
}

// rankConcepts returns lower-cased alphabetic words of at least three
// letters ordered by descending frequency. Ties keep first-seen order.
func rankConcepts(text string) []wordFreq {
	var table []wordFreq
	index := make(map[string]int)

	for _, w := range alphaRun.FindAllString(text, -1) {
		if len(w) < minConceptLength {
			continue
		}
		w = strings.ToLower(w)
		if i, ok := index[w]; ok {
			table[i].count++
			continue
		}
		index[w] = len(table)
		table = append(table, wordFreq{word: w, count: 1})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].count > table[j].count
	})
	return table
}

// argumentDirection counts every occurrence of each lexicon word as a
// substring of the lower-cased text, so "problems" counts for "problem".
func argumentDirection(text string) types.ArgumentDirection {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range positiveLexicon {
		pos += strings.Count(lower, w)
	}
	for _, w := range negativeLexicon {
		neg += strings.Count(lower, w)
	}

	return types.ArgumentDirection{
		Positive:  pos,
		Negative:  neg,
		Direction: types.DirectionFromCounts(pos, neg),
	}
}
