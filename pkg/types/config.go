// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings for the single request made against the search API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with the request
	// (e.g. "arxiv-crosslist/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// APIBase is the search endpoint, without query string.
	APIBase string `json:"api_base" yaml:"api_base" mapstructure:"api_base"`
}

// QueryConfig holds the category selection and paging for one run.
type QueryConfig struct {
	// BaseCategory is the subject tag searched on the API side (e.g. "quant-ph").
	BaseCategory string `json:"base_category" yaml:"base_category" mapstructure:"base_category"`

	// CrossCategories is the set of tags an entry must be cross-listed into
	// to appear in the digest. Order and duplicates are not significant.
	CrossCategories []string `json:"cross_categories" yaml:"cross_categories" mapstructure:"cross_categories"`

	// MaxResults caps the page size requested from the API (default 50).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// StartIndex is the pagination offset (default 0).
	StartIndex int `json:"start_index" yaml:"start_index" mapstructure:"start_index"`
}

// MailConfig holds the SMTP submission settings used when the digest is mailed.
type MailConfig struct {
	// Enabled sends the digest by mail instead of writing it to stdout.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Host is the SMTP submission host (e.g. "smtp.gmail.com").
	Host string `json:"host" yaml:"host" mapstructure:"host"`

	// Port is the SMTP submission port (default 587).
	Port int `json:"port" yaml:"port" mapstructure:"port"`

	// Address is used as both sender and recipient.
	Address string `json:"address" yaml:"address" mapstructure:"address"`

	// Username is the SMTP login; defaults to Address.
	Username string `json:"username,omitempty" yaml:"username,omitempty" mapstructure:"username"`

	// Password is the SMTP password. Usually left empty and loaded from
	// .secrets/smtp-password instead.
	Password string `json:"-" yaml:"-" mapstructure:"password"`

	// StartTLS requires a STARTTLS upgrade before authenticating (default true).
	StartTLS bool `json:"starttls" yaml:"starttls" mapstructure:"starttls"`
}

// OutputFormat selects how the finished digest is written.
type OutputFormat string

const (
	OutputHTML OutputFormat = "html"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// OutputConfig holds settings for the stdout boundary.
type OutputConfig struct {
	// Format selects html, json, or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings for a run.
type Config struct {
	Query  QueryConfig  `json:"query" yaml:"query" mapstructure:"query"`
	HTTP   HTTPConfig   `json:"http" yaml:"http" mapstructure:"http"`
	Mail   MailConfig   `json:"mail" yaml:"mail" mapstructure:"mail"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
}
