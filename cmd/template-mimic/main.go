// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the template-mimic CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/template-mimic/internal/logger"
	"github.com/pdiddy/template-mimic/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the template-mimic CLI.
var rootCmd = &cobra.Command{
	Use:   "template-mimic",
	Short: "Structure-preserving paragraph paraphrasing and scoring",
	Long: `template-mimic analyzes English paragraph templates, asks a text-generation
service for paragraphs with the same discourse and content structure on a new
topic, and scores how closely each paraphrase matches its template.

Each case directory holds context.txt, topic.txt, high_weight.txt and
template1.json through template4.json. The run subcommand writes results.json
beside them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(viper.GetString("log.level"))
		if err != nil {
			return err
		}
		logger.Init(logger.Config{
			Level:  level,
			Format: viper.GetString("log.format"),
			Output: os.Stderr,
		})

		s, err := secrets.Load(secrets.DefaultDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.ForComponent("cli").Info("loaded secrets", "keys", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./template-mimic.yaml or ~/.config/template-mimic/template-mimic.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json (default text)")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	viper.SetDefault("source_dir", "source")
	viper.SetDefault("case_pattern", "case*")
	viper.SetDefault("analysis", "local")
	viper.SetDefault("generation.max_retries", 3)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("template-mimic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "template-mimic"))
		}
	}

	viper.SetEnvPrefix("TEMPLATE_MIMIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
