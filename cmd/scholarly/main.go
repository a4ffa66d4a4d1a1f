// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholarly CLI, an operator
// surface over the arXiv and Semantic Scholar tool clients.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholarly/internal/progress"
	"github.com/pdiddy/scholarly/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scholarly CLI.
var rootCmd = &cobra.Command{
	Use:   "scholarly",
	Short: "Query arXiv and Semantic Scholar from the command line",
	Long: `scholarly wraps the arXiv and Semantic Scholar APIs behind typed
commands. Each API surface is a subcommand: arxiv, papers, authors, and
snippets. Results print to stdout as JSON; progress goes to stderr.

Stored search configuration ("valves") can be loaded from a YAML file
with --valves. When the file enables use_valves, its pagination, sorting,
and field selections replace the corresponding command-line flags.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholarly.yaml or ~/.config/scholarly/config.yaml)")
	rootCmd.PersistentFlags().String("valves", "", "YAML file with stored search configuration")
	rootCmd.PersistentFlags().Bool("progress", false, "report request progress on stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholarly")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholarly"))
		}
	}

	viper.SetEnvPrefix("SCHOLARLY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// toolConfig assembles the effective configuration: defaults, then the
// valves file named by --valves or the config/env key "valves", then
// HTTP overrides from config/env.
func toolConfig() (types.ToolConfig, error) {
	path, _ := rootCmd.PersistentFlags().GetString("valves")
	if path == "" {
		path = viper.GetString("valves")
	}

	cfg := types.DefaultToolConfig()
	if path != "" {
		loaded, err := types.LoadToolConfig(path)
		if err != nil {
			return types.ToolConfig{}, err
		}
		cfg = loaded
	}

	if viper.IsSet("http.timeout") {
		cfg.HTTP.Timeout = viper.GetDuration("http.timeout")
	}
	if viper.IsSet("http.user_agent") {
		cfg.HTTP.UserAgent = viper.GetString("http.user_agent")
	}
	return cfg, nil
}

// progressSink returns the sink selected by the --progress flag.
func progressSink() progress.Sink {
	if on, _ := rootCmd.PersistentFlags().GetBool("progress"); on {
		return progress.Writer(os.Stderr)
	}
	return progress.Discard
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
