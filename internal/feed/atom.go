// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"io"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

// Extension prefixes as declared by the arXiv API responses.
const (
	arxivPrefix      = "arxiv"
	opensearchPrefix = "opensearch"
)

// Parse decodes an Atom search response. Vendor elements in the arxiv and
// opensearch namespaces are read from the parser's extension map.
func Parse(r io.Reader) (types.FeedMetadata, []types.FeedEntry, error) {
	fp := &atom.Parser{}
	f, err := fp.Parse(r)
	if err != nil {
		return types.FeedMetadata{}, nil, &ParseError{Err: err}
	}

	meta := types.FeedMetadata{
		Updated:      strings.TrimSpace(f.Updated),
		TotalResults: extensionInt(f.Extensions, opensearchPrefix, "totalResults"),
		StartIndex:   extensionInt(f.Extensions, opensearchPrefix, "startIndex"),
		ItemsPerPage: extensionInt(f.Extensions, opensearchPrefix, "itemsPerPage"),
	}

	entries := make([]types.FeedEntry, 0, len(f.Entries))
	for _, e := range f.Entries {
		if e == nil {
			continue
		}
		entries = append(entries, convertEntry(e))
	}
	return meta, entries, nil
}

func convertEntry(e *atom.Entry) types.FeedEntry {
	fe := types.FeedEntry{
		ID:      strings.TrimSpace(e.ID),
		Title:   strings.TrimSpace(e.Title),
		Summary: strings.TrimSpace(e.Summary),
	}

	// Leave Authors nil when the entry has no <author> element.
	if len(e.Authors) > 0 {
		fe.Authors = make([]types.Author, 0, len(e.Authors))
		for _, a := range e.Authors {
			if a == nil {
				continue
			}
			fe.Authors = append(fe.Authors, types.Author{Name: strings.TrimSpace(a.Name)})
		}
	}

	for _, c := range e.Categories {
		if c == nil {
			continue
		}
		fe.Tags = append(fe.Tags, types.Tag{Term: c.Term})
	}

	for _, l := range e.Links {
		if l == nil {
			continue
		}
		fe.Links = append(fe.Links, types.Link{Rel: l.Rel, Title: l.Title, Href: l.Href})
	}

	if v, ok := extensionValue(e.Extensions, arxivPrefix, "comment"); ok {
		comment := strings.TrimSpace(v)
		fe.Comment = &comment
	}

	return fe
}

func extensionValue(exts ext.Extensions, prefix, name string) (string, bool) {
	if exts == nil {
		return "", false
	}
	values := exts[prefix][name]
	if len(values) == 0 {
		return "", false
	}
	return values[0].Value, true
}

func extensionInt(exts ext.Extensions, prefix, name string) int {
	v, ok := extensionValue(exts, prefix, name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
