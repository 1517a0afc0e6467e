// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-crosslist/internal/secrets"
	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

const defaultTimeout = 60 * time.Second

// loadConfig decodes the merged file, env, and flag settings and fills in
// the mail password from the secrets directory or environment.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	if cfg.HTTP.Timeout <= 0 {
		cfg.HTTP.Timeout = defaultTimeout
	}
	if cfg.HTTP.UserAgent == "" {
		cfg.HTTP.UserAgent = defaultUA
	}
	cfg.Mail.Password = secrets.Resolve(cfg.Mail.Password, loadedSecrets, secrets.SMTPPassword, mailPasswordEnv)
	return cfg, nil
}

// parseRunDate returns now when s is empty, otherwise the YYYY-MM-DD date
// in now's location.
func parseRunDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", s, err)
	}
	return t, nil
}
