// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/template-mimic/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer and comparator as MCP tools over stdio",
	Long: `Serve starts a Model Context Protocol server on standard input and output
with the tools analyze_text, compare_texts and paraphrase_prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.Serve(version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
