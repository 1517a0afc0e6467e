// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pdiddy/arxiv-crosslist/internal/query"
	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

// digestTemplate has no whitespace between elements; the rendered body is
// the concatenation of the parts below.
var digestTemplate = template.Must(template.New("digest").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(
	`<h1>{{.Title}}</h1>` +
		`Feed last updated: {{.FeedUpdated}}` +
		`{{range .Entries}}` +
		`<a href="{{.PDFURL}}"><h2>{{.Title}}</h2></a>` +
		`{{if .HasAuthors}}Authors:  {{join .Authors ", "}}</br>{{end}}` +
		`Comments: {{.Comment}}</br>` +
		`Primary Category: {{.PrimaryCategory}}</br>` +
		`All Categories: {{join .AllCategories ", "}}</br>` +
		`<p>{{.Summary}}</p>` +
		`</br>` +
		`{{end}}`,
))

// Render folds entries into the HTML body. The output depends only on its
// arguments, so equal inputs give byte-identical output.
func Render(title, feedUpdated string, entries []types.DigestEntry) (string, error) {
	var b strings.Builder
	data := struct {
		Title       string
		FeedUpdated string
		Entries     []types.DigestEntry
	}{title, feedUpdated, entries}

	if err := digestTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering digest: %w", err)
	}
	return b.String(), nil
}

// Title returns the digest heading for a base category and its tracked
// cross-listing categories.
func Title(base string, cross []string) string {
	return fmt.Sprintf("New %s submissions cross listed on %s",
		base, strings.Join(query.Categories(cross), ", "))
}

// Assemble renders entries and returns the finished digest.
func Assemble(title, feedUpdated string, entries []types.DigestEntry) (types.Digest, error) {
	body, err := Render(title, feedUpdated, entries)
	if err != nil {
		return types.Digest{}, err
	}
	return types.Digest{
		Title:       title,
		FeedUpdated: feedUpdated,
		Entries:     entries,
		HTMLBody:    body,
	}, nil
}
