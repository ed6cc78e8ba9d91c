// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import "text/template"

// analysisTmpl asks a model to analyze a template paragraph itself. It is
// used by the remote analysis mode; the reply is normalized before use.
var analysisTmpl = template.Must(template.New("analysis").Parse(`Analyze the following English paragraph in two aspects:
1. Discourse Structure: Identify the function of each sentence, the rhetorical devices used, and the sentence connection patterns.
2. Content Structure: Extract the core concepts, the direction of argumentation (positive/negative/balanced), and the logical flow.

Use only these labels:
- sentence_types keys: thesis, evidence, transition, conclusion, other
- connectives keys: causal, contrast, addition, comparison, example
- rhetoric keys: simile, metaphor, parallelism, rhetorical_question
- argument_direction.direction: positive, negative, balanced
- logical_flow: problem-analysis-solution, background-current-future, claim-evidence-conclusion, other

Paragraph:
{{.}}

Provide your analysis in JSON format with the following keys:
- discourse_structure: {"sentence_count", "sentence_types", "connectives", "rhetoric", "sentence_length"}
- content_structure: {"core_concepts", "related_concepts", "argument_direction", "logical_flow"}
`))

// Analysis builds the instruction asking a model to analyze text.
func Analysis(text string) string {
	return render(analysisTmpl, text)
}
