// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes a finished digest to a stream.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

// ParseFormat validates a format name. An empty name selects html.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case "":
		return types.OutputHTML, nil
	case types.OutputHTML, types.OutputJSON, types.OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want html, json, or yaml)", s)
	}
}

// Write writes d to w in the given format. html writes the rendered body;
// json and yaml write the digest's fields and entries.
func Write(w io.Writer, d types.Digest, format types.OutputFormat) error {
	switch format {
	case "", types.OutputHTML:
		_, err := fmt.Fprintln(w, d.HTMLBody)
		return err
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
