// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the patent-lens CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/patent-lens/internal/secrets"
	"github.com/pdiddy/patent-lens/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the patent-lens CLI.
var rootCmd = &cobra.Command{
	Use:   "patent-lens",
	Short: "Keyword search and insight reports over PatentsView",
	Long: `patent-lens searches the PatentsView API for patents whose abstracts match
a list of keywords, normalizes the results into a fixed-column table, and
derives insights: the grant-year distribution, the top assignee countries,
and an abstract keyword cloud.

Each surface is a subcommand: search queries the API and writes exports,
report renders a saved results file, archive browses the local search
history, and serve hosts the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
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
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./patent-lens.yaml or ~/.config/patent-lens/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("patent-lens")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "patent-lens"))
		}
	}

	viper.SetEnvPrefix("PATENT_LENS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig resolves search settings. Flags win, then the config file;
// the API key additionally falls back to the .secrets/ directory.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	apiKey, _ := cmd.Flags().GetString("api-key")
	apiKey = secretDefault(secrets.PatentsViewAPIKey, apiKey)
	if apiKey == "" {
		apiKey = viper.GetString("search.api_key")
	}

	perPage, _ := cmd.Flags().GetInt("per-page")
	if perPage <= 0 {
		perPage = viper.GetInt("search.per_page")
	}

	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		APIKey:     apiKey,
		BaseURL:    viper.GetString("search.base_url"),
		PerPage:    perPage,
		MaxRetries: viper.GetInt("search.max_retries"),
	}
}

// insightConfig resolves insight settings from the config file.
func insightConfig() types.InsightConfig {
	return types.InsightConfig{
		TopCountries:   viper.GetInt("insights.top_countries"),
		MaxWords:       viper.GetInt("insights.max_words"),
		ExtraStopwords: viper.GetStringSlice("insights.extra_stopwords"),
	}
}

// archiveConfig resolves the archive directory from the config file.
func archiveConfig() types.ArchiveConfig {
	return types.ArchiveConfig{Dir: viper.GetString("archive.dir")}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
