// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs case directories end to end: load the inputs,
// analyze each template, build prompts, generate paraphrases, score them and
// write the results artifact.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/template-mimic/internal/analyze"
	"github.com/pdiddy/template-mimic/internal/casefile"
	"github.com/pdiddy/template-mimic/internal/llm"
	"github.com/pdiddy/template-mimic/internal/logger"
	"github.com/pdiddy/template-mimic/internal/prompt"
	"github.com/pdiddy/template-mimic/internal/results"
	"github.com/pdiddy/template-mimic/pkg/types"
)

// Deps are the external collaborators a run calls.
type Deps struct {
	Generator llm.Generator

	// Analyzer, when set, replaces local analysis of templates with the
	// remote service's analysis.
	Analyzer llm.RemoteAnalyzer
}

// Options control what a run writes.
type Options struct {
	// WriteYAML also writes results.yaml.
	WriteYAML bool

	// DryRun prints prompts and stops before generation.
	DryRun bool
}

// BatchSummary holds counts from a batch run.
type BatchSummary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the number of cases seen.
func (s BatchSummary) Total() int {
	return s.Processed + s.Skipped + s.Failed
}

// HasFailures reports whether any case failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ProcessAll runs every case under sourceDir whose name matches pattern.
// Only a missing source directory is returned as an error; per-case
// failures are counted and reported on w.
func ProcessAll(ctx context.Context, sourceDir, pattern string, deps Deps, opts Options, w io.Writer) (BatchSummary, error) {
	dirs, err := casefile.Discover(sourceDir, pattern)
	if err != nil {
		return BatchSummary{}, err
	}

	var summary BatchSummary
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		name := filepath.Base(dir)
		fmt.Fprintf(w, "processing %s\n", name)

		if _, err := ProcessCase(ctx, dir, deps, opts, w); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		if opts.DryRun {
			fmt.Fprintf(w, "skipped %s (dry run)\n", name)
			summary.Skipped++
			continue
		}
		summary.Processed++
	}
	return summary, nil
}

// ProcessCase runs the case in dir and writes its artifact beside the
// inputs. Collaborator failures degrade the affected template and never fail
// the case; an error means the case could not be loaded or written.
func ProcessCase(ctx context.Context, dir string, deps Deps, opts Options, w io.Writer) (types.RunResult, error) {
	if deps.Generator == nil && !opts.DryRun {
		return types.RunResult{}, errors.New("no generator configured")
	}

	c, err := casefile.Load(dir)
	if err != nil {
		return types.RunResult{}, err
	}

	inputs := Prepare(ctx, c, deps.Analyzer)

	if opts.DryRun {
		for i, in := range inputs {
			fmt.Fprintf(w, "--- %s template %d ---\n%s\n", c.Name, i+1, in.Prompt)
		}
		return results.Assemble(inputs, c.HighWeightIndex), nil
	}

	log := logger.ForComponent("pipeline")
	for i := range inputs {
		text, err := deps.Generator.Generate(ctx, inputs[i].Prompt)
		if err != nil {
			log.Warn("generation failed", "case", c.Name, "template", i+1, "error", err)
			text = ""
		}
		inputs[i].GeneratedText = text
	}

	result := results.Assemble(inputs, c.HighWeightIndex)

	path, err := results.WriteJSON(dir, result)
	if err != nil {
		return result, err
	}
	fmt.Fprintf(w, "wrote %s\n", relPath(path))

	if opts.WriteYAML {
		path, err := results.WriteYAML(dir, result)
		if err != nil {
			return result, err
		}
		fmt.Fprintf(w, "wrote %s\n", relPath(path))
	}
	return result, nil
}

// Prepare analyzes each template of c and builds its generation prompt.
// With a nil analyzer templates are analyzed locally. A remote analysis
// that fails or comes back incomplete yields the minimal prompt; the record
// keeps whatever the normalized reply contained.
func Prepare(ctx context.Context, c casefile.Case, analyzer llm.RemoteAnalyzer) []results.Input {
	log := logger.ForComponent("pipeline")
	inputs := make([]results.Input, len(c.Templates))

	for i, text := range c.Templates {
		highWeight := i == c.HighWeightIndex

		if analyzer == nil {
			a := analyze.Text(text)
			inputs[i] = results.Input{
				OriginalText: text,
				Analysis:     a,
				Prompt:       prompt.Paraphrase(&a, c.Context, c.Topic, highWeight),
			}
			continue
		}

		a := types.NewAnalysis()
		complete := false
		raw, err := analyzer.AnalyzeTemplate(ctx, text)
		if err != nil {
			log.Warn("remote analysis failed", "case", c.Name, "template", i+1, "error", err)
		} else {
			a, complete = analyze.Normalize(raw)
			if !complete {
				log.Warn("remote analysis incomplete", "case", c.Name, "template", i+1)
			}
		}

		var usable *types.Analysis
		if complete {
			usable = &a
		}
		inputs[i] = results.Input{
			OriginalText: text,
			Analysis:     a,
			Prompt:       prompt.Paraphrase(usable, c.Context, c.Topic, highWeight),
		}
	}
	return inputs
}

// relPath shortens an artifact path to "<case>/<file>" for progress lines.
func relPath(path string) string {
	return filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path))
}
