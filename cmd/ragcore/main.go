// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ragcore CLI.
// Implements: prd001-corpus-index, prd002-local-search, prd003-arxiv,
//             prd004-providers (CLI surface).
// See docs/ARCHITECTURE.md § Command Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ragcore/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, then the named secret, then "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the ragcore CLI.
var rootCmd = &cobra.Command{
	Use:   "ragcore",
	Short: "Research retrieval over local corpus, arXiv, and web providers",
	Long: `ragcore retrieves research context for idea generation. It indexes a local
corpus of text files into a searchable entity graph, queries the arXiv API for
academic papers, and unifies both with web-search and curated domain providers
behind a single facade with automatic fallback.

Each concern is a subcommand: index, search, arxiv, retrieve, and providers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is the normal case.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
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
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ragcore.yaml or ~/.config/ragcore/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ragcore")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ragcore"))
		}
	}

	viper.SetDefault("corpus.dir", "corpus")
	viper.SetDefault("corpus.index_dir", filepath.Join("corpus", ".index"))

	viper.SetEnvPrefix("RAGCORE")
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
