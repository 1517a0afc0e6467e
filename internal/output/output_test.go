// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

func testDigest() types.Digest {
	return types.Digest{
		Title:       "New quant-ph submissions cross listed on cond-mat.str-el",
		FeedUpdated: "2026-10-19T00:00:00Z",
		Entries: []types.DigestEntry{{
			ArxivID:         "2610.00001v1",
			IsFirstVersion:  true,
			PDFURL:          "http://arxiv.org/pdf/2610.00001v1",
			Title:           "Spin Liquids",
			Authors:         []string{"Ada Lovelace"},
			HasAuthors:      true,
			Comment:         "10 pages",
			PrimaryCategory: "quant-ph",
			AllCategories:   []string{"quant-ph", "cond-mat.str-el"},
			Summary:         "Abstract.",
		}},
		HTMLBody: "<h1>title</h1>",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{"", types.OutputHTML, false},
		{"html", types.OutputHTML, false},
		{"json", types.OutputJSON, false},
		{"yaml", types.OutputYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testDigest(), types.OutputHTML))
	assert.Equal(t, "<h1>title</h1>\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testDigest(), types.OutputJSON))

	var got types.Digest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2026-10-19T00:00:00Z", got.FeedUpdated)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "2610.00001v1", got.Entries[0].ArxivID)
	assert.NotContains(t, buf.String(), "<h1>", "the html body is not part of the structured output")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testDigest(), types.OutputYAML))

	assert.Contains(t, buf.String(), "arxiv_id: 2610.00001v1")

	var got types.Digest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Entries, 1)
	assert.Equal(t, []string{"quant-ph", "cond-mat.str-el"}, got.Entries[0].AllCategories)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testDigest(), types.OutputFormat("csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
}
