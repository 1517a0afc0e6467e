// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-crosslist/internal/feed"
	"github.com/pdiddy/arxiv-crosslist/internal/mail"
	"github.com/pdiddy/arxiv-crosslist/internal/output"
	"github.com/pdiddy/arxiv-crosslist/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch yesterday's submissions and produce the digest",
	Long: `Run queries the arXiv API for submissions in the base category updated
between 20:00 two days ago and 20:00 yesterday, keeps the first versions
cross-listed into the tracked categories, and writes the HTML digest to stdout.

With --mail the digest is sent as an HTML email instead.`,
	RunE: runDigest,
}

func init() {
	runCmd.Flags().String("base", "", "base category to search (default quant-ph)")
	runCmd.Flags().StringSlice("cross", nil, "tracked cross-listing category (repeatable or comma-separated)")
	runCmd.Flags().Int("max-results", 0, "page size requested from the API (default 50)")
	runCmd.Flags().Int("start", 0, "pagination offset")
	runCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	runCmd.Flags().String("format", "", "output format: html, json, or yaml")
	runCmd.Flags().Bool("mail", false, "mail the digest instead of printing it")
	runCmd.Flags().String("date", "", "run as if today were this date (YYYY-MM-DD)")
	runCmd.Flags().String("feed-file", "", "read a saved Atom response instead of querying the API")

	bindFlag("query.base_category", "base")
	bindFlag("query.cross_categories", "cross")
	bindFlag("query.max_results", "max-results")
	bindFlag("query.start_index", "start")
	bindFlag("http.timeout", "timeout")
	bindFlag("output.format", "format")
	bindFlag("mail.enabled", "mail")

	rootCmd.AddCommand(runCmd)
}

// bindFlag lets a changed run flag override the file and env value of key.
func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, runCmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return err
	}

	dateFlag, _ := cmd.Flags().GetString("date")
	today, err := parseRunDate(dateFlag, time.Now())
	if err != nil {
		return err
	}

	var src feed.Source = feed.NewArxivSource(cfg.HTTP, logger)
	if path, _ := cmd.Flags().GetString("feed-file"); path != "" {
		logger.Info("reading feed from file", zap.String("path", path))
		src = &feed.FileSource{Path: path}
	}

	ctx := cmd.Context()
	d, err := pipeline.Run(ctx, src, cfg.Query, today, logger)
	if err != nil {
		return err
	}

	if cfg.Mail.Enabled {
		return mail.NewSender(cfg.Mail, logger).Send(ctx, d)
	}
	return output.Write(cmd.OutOrStdout(), d, format)
}
