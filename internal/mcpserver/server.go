// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the structural analyzer, comparator and prompt
// builder as MCP tools over stdio. Every tool is local computation; none of
// them call the text-generation service.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/template-mimic/internal/analyze"
	"github.com/pdiddy/template-mimic/internal/prompt"
	"github.com/pdiddy/template-mimic/internal/results"
)

// New creates the MCP server with all tools registered.
func New(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"template-mimic",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	for _, t := range Tools() {
		s.AddTool(t.Definition, t.Handle)
	}
	return s
}

// Serve runs the server on stdin/stdout until the client disconnects.
func Serve(version string) error {
	return server.ServeStdio(New(version))
}

// Tool pairs a tool definition with its handler.
type Tool struct {
	Definition mcp.Tool
	Handle     server.ToolHandlerFunc
}

// Tools returns the tools the server registers.
func Tools() []Tool {
	return []Tool{
		{analyzeTextDef(), handleAnalyzeText},
		{compareTextsDef(), handleCompareTexts},
		{paraphrasePromptDef(), handleParaphrasePrompt},
	}
}

func analyzeTextDef() mcp.Tool {
	return mcp.NewTool("analyze_text",
		mcp.WithDescription("Analyze the discourse and content structure of an English paragraph. Returns the analysis as JSON."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The paragraph to analyze")),
	)
}

func handleAnalyzeText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	return jsonResult(analyze.Text(text))
}

func compareTextsDef() mcp.Tool {
	return mcp.NewTool("compare_texts",
		mcp.WithDescription("Score how closely a generated paragraph matches the structure of an original one. Returns discourse, content and overall similarity in [0,1]."),
		mcp.WithString("original", mcp.Required(), mcp.Description("The original template paragraph")),
		mcp.WithString("generated", mcp.Required(), mcp.Description("The generated paraphrase")),
	)
}

func handleCompareTexts(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	original := req.GetString("original", "")
	if strings.TrimSpace(original) == "" {
		return mcp.NewToolResultError("original is required"), nil
	}
	generated := req.GetString("generated", "")
	return jsonResult(results.Similarity(analyze.Text(original), generated))
}

func paraphrasePromptDef() mcp.Tool {
	return mcp.NewTool("paraphrase_prompt",
		mcp.WithDescription("Build the generation instruction that asks for a paragraph with the same structure as a template, on a new topic."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The template paragraph")),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic of the new paragraph")),
		mcp.WithString("context", mcp.Description("Setting the paragraph is written for")),
		mcp.WithBoolean("high_weight", mcp.Description("Append the high-priority instruction block")),
	)
}

func handleParaphrasePrompt(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	topic := req.GetString("topic", "")
	if strings.TrimSpace(text) == "" || strings.TrimSpace(topic) == "" {
		return mcp.NewToolResultError("text and topic are required"), nil
	}

	a := analyze.Text(text)
	p := prompt.Paraphrase(&a, req.GetString("context", ""), topic, req.GetBool("high_weight", false))
	return mcp.NewToolResultText(p), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
