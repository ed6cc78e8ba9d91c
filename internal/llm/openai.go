// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/pdiddy/template-mimic/internal/analyze"
	"github.com/pdiddy/template-mimic/internal/httputil"
	"github.com/pdiddy/template-mimic/internal/prompt"
	"github.com/pdiddy/template-mimic/pkg/types"
)

// Defaults applied by NewOpenAIBackend when the configuration leaves a
// field unset.
const (
	DefaultModel           = "gpt-4o-mini"
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 300

	analysisTemperature     = 0.3
	analysisMaxOutputTokens = 1000
)

const generationInstructions = `You are a professional English paragraph writing assistant. Write one coherent English paragraph that follows the given structure and topic. Reply with the paragraph only.`

const analysisInstructions = `You are a professional text analysis assistant. Reply with a single JSON object with the keys "discourse_structure" and "content_structure" and nothing else.`

// OpenAIBackend generates paraphrases and remote analyses through the
// OpenAI Responses API. BaseURL in the configuration points it at any
// compatible gateway.
type OpenAIBackend struct {
	client          openai.Client
	model           string
	temperature     float64
	maxOutputTokens int64
}

// NewOpenAIBackend builds a backend from cfg. The client's own retries are
// disabled: rate-limited requests are retried by the HTTP transport, and
// other failures by wrapping the backend with WithRetry. Extra request
// options are appended after the configured ones.
func NewOpenAIBackend(cfg types.GenerationConfig, opts ...option.RequestOption) *OpenAIBackend {
	var reqOpts []option.RequestOption
	if cfg.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts,
		option.WithMaxRetries(0),
		option.WithHTTPClient(httputil.NewClient(cfg.MaxRetries)),
	)
	reqOpts = append(reqOpts, opts...)

	b := &OpenAIBackend{
		client:          openai.NewClient(reqOpts...),
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
	}
	if b.model == "" {
		b.model = DefaultModel
	}
	if b.temperature <= 0 {
		b.temperature = DefaultTemperature
	}
	if b.maxOutputTokens <= 0 {
		b.maxOutputTokens = DefaultMaxOutputTokens
	}
	return b
}

// Model returns the model identifier requests are sent to.
func (b *OpenAIBackend) Model() string { return b.model }

// Generate sends one generation instruction and returns the trimmed reply.
func (b *OpenAIBackend) Generate(ctx context.Context, instruction string) (string, error) {
	params := responses.ResponseNewParams{
		Model:           b.model,
		Instructions:    openai.String(generationInstructions),
		Temperature:     openai.Float(b.temperature),
		MaxOutputTokens: openai.Int(b.maxOutputTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(instruction, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := b.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("generating paragraph: %w", err)
	}

	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", errors.New("generating paragraph: empty reply")
	}
	return text, nil
}

// AnalyzeTemplate asks the model to analyze text and decodes its JSON reply.
func (b *OpenAIBackend) AnalyzeTemplate(ctx context.Context, text string) (analyze.RawAnalysis, error) {
	schema, err := generateSchema[analyze.RawAnalysis]()
	if err != nil {
		return analyze.RawAnalysis{}, err
	}

	params := responses.ResponseNewParams{
		Model:           b.model,
		Instructions:    openai.String(analysisInstructions),
		Temperature:     openai.Float(analysisTemperature),
		MaxOutputTokens: openai.Int(analysisMaxOutputTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt.Analysis(text), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        "template_analysis",
					Schema:      schema,
					Strict:      openai.Bool(false),
					Description: openai.String("Discourse and content structure of one paragraph"),
					Type:        "json_schema",
				},
			},
		},
	}

	resp, err := b.client.Responses.New(ctx, params)
	if err != nil {
		return analyze.RawAnalysis{}, fmt.Errorf("analyzing template: %w", err)
	}

	var raw analyze.RawAnalysis
	if err := DecodeJSON(resp.OutputText(), &raw); err != nil {
		return analyze.RawAnalysis{}, fmt.Errorf("decoding analysis reply: %w", err)
	}
	return raw, nil
}

// Ping lists the model identifiers the service offers. A nil error means
// the endpoint and credentials work.
func (b *OpenAIBackend) Ping(ctx context.Context) ([]string, error) {
	page, err := b.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
