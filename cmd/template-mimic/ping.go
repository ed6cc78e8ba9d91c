// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the connection to the text-generation service",
	Long: `Ping lists the models offered by the configured endpoint. It succeeds
when the endpoint is reachable and the API key is accepted.`,
	RunE: runPing,
}

func init() {
	addGenerationFlags(pingCmd)

	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	bindGenerationFlags(cmd)

	backend, err := newBackend(generationConfig())
	if err != nil {
		return err
	}

	models, err := backend.Ping(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "connected: %d model(s) available, using %s\n", len(models), backend.Model())
	for _, m := range models {
		fmt.Fprintf(w, "  %s\n", m)
	}
	return nil
}
