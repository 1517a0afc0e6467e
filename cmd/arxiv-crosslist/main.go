// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-crosslist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-crosslist/internal/query"
	"github.com/pdiddy/arxiv-crosslist/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	envPrefix       = "ARXIV_CROSSLIST"
	defaultUA       = "arxiv-crosslist/0.1"
	secretsDir      = ".secrets/"
	mailPasswordEnv = envPrefix + "_MAIL_PASSWORD"
)

var (
	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets map[string]string

	// logger writes diagnostics to stderr; stdout carries the digest.
	logger = zap.NewNop()
)

// rootCmd is the base command for the arxiv-crosslist CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-crosslist",
	Short: "Daily digest of arXiv submissions cross-listed into tracked categories",
	Long: `arxiv-crosslist queries the arXiv API for yesterday's submissions in a base
category, keeps the first versions that are cross-listed into a set of tracked
categories, and renders them as one HTML digest.

The digest is written to stdout or mailed to a configured address.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l

		if path := viper.ConfigFileUsed(); path != "" {
			logger.Debug("using config file", zap.String("path", path))
		}

		s, err := secrets.Load(secretsDir, logger)
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
			logger.Debug("loaded secrets", zap.Strings("keys", keys))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-crosslist.yaml or ~/.config/arxiv-crosslist/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug diagnostics to stderr")

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("query.base_category", "quant-ph")
	viper.SetDefault("query.cross_categories", []string{"cond-mat.str-el", "cond-mat.mes-hall"})
	viper.SetDefault("query.max_results", query.DefaultMaxResults)
	viper.SetDefault("query.start_index", 0)

	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUA)
	viper.SetDefault("http.api_base", query.DefaultAPIBase)

	viper.SetDefault("mail.enabled", false)
	viper.SetDefault("mail.host", "")
	viper.SetDefault("mail.port", 587)
	viper.SetDefault("mail.address", "")
	viper.SetDefault("mail.username", "")
	viper.SetDefault("mail.starttls", true)

	viper.SetDefault("output.format", "html")
}

func initConfig() {
	// A missing .env is fine; values already in the environment win.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-crosslist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-crosslist"))
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
