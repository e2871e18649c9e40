// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bibcite CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kemu-chem/bibcite/internal/secrets"
	"github.com/kemu-chem/bibcite/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the bibcite CLI.
var rootCmd = &cobra.Command{
	Use:   "bibcite",
	Short: "Format bibliographies in journal citation styles",
	Long: `bibcite renders bibliographic entries into citation strings in a set of
journal styles, each with a plain-text and a rich-markup (RTF) encoding; the
RTF output can be transcoded to HTML for display.

Entries come from BibTeX or RIS files, from Crossref DOI lookups, or from a
local SQLite library. Each operation is a subcommand: render, fetch, export,
library, and serve.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bibcite.yaml or ~/.config/bibcite/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bibcite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bibcite"))
		}
	}

	viper.SetEnvPrefix("BIBCITE")
	viper.AutomaticEnv()

	viper.SetDefault("fetch.timeout", 30*time.Second)
	viper.SetDefault("fetch.user_agent", "bibcite/"+version)
	viper.SetDefault("fetch.requests_per_second", 1.0)
	viper.SetDefault("render.style", "ACS")
	viper.SetDefault("render.format", "plain")
	viper.SetDefault("render.sort", "appearance")
	viper.SetDefault("library.path", "library.db")
	viper.SetDefault("server.addr", ":8000")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the typed configuration from viper and the loaded
// secrets.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Fetch.Email == "" {
		cfg.Fetch.Email = secrets.Lookup(loadedSecrets, "crossref-email")
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
