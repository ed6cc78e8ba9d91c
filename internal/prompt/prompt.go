// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt turns structural analyses into generation instructions.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/template-mimic/pkg/types"
)

// paraphraseTmpl describes the target structure of one paraphrase.
var paraphraseTmpl = template.Must(template.New("paraphrase").Parse(`Generate a paragraph following this structure:
1. Discourse Structure:
   - {{.SentenceCount}} sentences
   - Connectives: {{.Connectives}}
   - Rhetorical devices: {{.Rhetoric}}
   - Sentence types: {{.SentenceTypes}}

2. Content Structure:
   - Core concepts: {{.CoreConcepts}}
   - Argument direction: {{.Direction}}
   - Logical flow: {{.Flow}}

Context: {{.Context}}
Topic: {{.Topic}}

Requirements:
- Maintain the above structural features
- Replace specific concepts with topic-related content
- Ensure the paragraph is coherent and well-organized
`))

// highWeightTmpl is appended for the case's high-weight template.
var highWeightTmpl = template.Must(template.New("high-weight").Parse(`
Special Instructions (High Priority Template):
- Pay extra attention to preserving the following features: {{.Features}}
- Follow the {{.Flow}} logical structure strictly
- Ensure positive statements about the topic account for at least 60% of the paragraph
- Use academic language style
- Make the argument more compelling and well-supported
`))

// minimalTmpl is used when no usable analysis exists for a template.
var minimalTmpl = template.Must(template.New("minimal").Parse(`Generate a coherent paragraph of 3-5 sentences about {{.Topic}} in the context of {{.Context}}.

Requirements:
- Use clear and logical structure
- Include relevant examples and explanations
- Maintain academic writing style
`))

const minimalHighWeight = `
Special Instructions (High Priority Template):
- Use more sophisticated language and structure
- Provide stronger arguments and evidence
- Ensure positive statements about the topic account for at least 60% of the paragraph
- Maintain academic writing standards
`

// paraphraseData is the view of an analysis the templates render.
type paraphraseData struct {
	SentenceCount int
	Connectives   string
	Rhetoric      string
	SentenceTypes string
	CoreConcepts  string
	Direction     types.Direction
	Flow          types.LogicalFlow
	Context       string
	Topic         string
}

// Paraphrase builds the generation instruction for one template. A nil
// analysis means the template's structure is unknown and yields the minimal
// generic prompt. highWeight appends the high-priority block.
func Paraphrase(a *types.Analysis, context, topic string, highWeight bool) string {
	if a == nil {
		out := render(minimalTmpl, struct{ Context, Topic string }{context, topic})
		if highWeight {
			out += minimalHighWeight
		}
		return out
	}

	data := paraphraseData{
		SentenceCount: a.Discourse.SentenceCount,
		Connectives:   describeCounts(types.Connectives, a.Discourse.Connectives, "none specified"),
		Rhetoric:      describeCounts(types.Rhetorics, a.Discourse.Rhetoric, "none specified"),
		SentenceTypes: describeRoles(a.Discourse.SentenceTypes),
		CoreConcepts:  joinOr(a.Content.CoreConcepts, "general concepts"),
		Direction:     a.Content.ArgumentDirection.Direction,
		Flow:          a.Content.LogicalFlow,
		Context:       context,
		Topic:         topic,
	}

	out := render(paraphraseTmpl, data)
	if highWeight {
		out += render(highWeightTmpl, struct {
			Features string
			Flow     types.LogicalFlow
		}{
			Features: joinOr(highWeightFeatures(a.Discourse.Rhetoric), "clear structure and flow"),
			Flow:     a.Content.LogicalFlow,
		})
	}
	return out
}

// highWeightFeatures names the detected devices the high-weight block calls out.
func highWeightFeatures(rhetoric map[types.Rhetoric]int) []string {
	var features []string
	if rhetoric[types.RhetoricSimile] > 0 {
		features = append(features, "simile rhetorical device")
	}
	if rhetoric[types.RhetoricParallelism] > 0 {
		features = append(features, "parallel sentence structure")
	}
	if rhetoric[types.RhetoricMetaphor] > 0 {
		features = append(features, "metaphorical expressions")
	}
	return features
}

// describeCounts lists positive categories as "name (n times)" in table order.
func describeCounts[K ~string](keys []K, counts map[K]int, fallback string) string {
	var parts []string
	for _, k := range keys {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s (%d times)", k, n))
		}
	}
	return joinOr(parts, fallback)
}

func describeRoles(counts map[types.SentenceRole]int) string {
	var parts []string
	for _, r := range types.SentenceRoles {
		if n := counts[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", r, n))
		}
	}
	return joinOr(parts, "mixed types")
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// render executes a template whose data is fully controlled by this package.
func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("prompt: rendering %s: %v", t.Name(), err))
	}
	return buf.String()
}
