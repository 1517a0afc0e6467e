// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-crosslist/internal/digest"
	"github.com/pdiddy/arxiv-crosslist/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the API request for a run without fetching it",
	Long: `Query builds the search request that run would send and prints the URL,
the search window, and the digest title. Nothing is fetched.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("date", "", "run as if today were this date (YYYY-MM-DD)")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	dateFlag, _ := cmd.Flags().GetString("date")
	today, err := parseRunDate(dateFlag, time.Now())
	if err != nil {
		return err
	}

	q, window, err := query.Build(cfg.Query, today)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "url:    %s\n", query.URL(cfg.HTTP.APIBase, q))
	fmt.Fprintf(w, "window: %s\n", window)
	fmt.Fprintf(w, "title:  %s\n", digest.Title(cfg.Query.BaseCategory, cfg.Query.CrossCategories))
	return nil
}
