// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest selects the cross-listed first-version entries of a feed
// and renders them into a single HTML document.
package digest

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

const (
	// absMarker precedes the identifier in an entry id
	// (e.g. "http://arxiv.org/abs/2610.01234v1").
	absMarker = "/abs/"

	// firstVersionSuffix is compared textually, not as a version number.
	firstVersionSuffix = "v1"

	pdfLinkTitle = "pdf"
	alternateRel = "alternate"
)

var (
	errNoTags = errors.New("entry has no category tags")
	errNoID   = errors.New("entry has no id")
)

// EntryExtractionError reports a malformed entry. The entry is skipped and
// the rest of the batch continues.
type EntryExtractionError struct {
	Index int
	ID    string
	Err   error
}

func (e *EntryExtractionError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("entry %d (%s): %v", e.Index, e.ID, e.Err)
}

func (e *EntryExtractionError) Unwrap() error { return e.Err }

// CategorySet is the set of tracked cross-listing categories. Membership is
// exact and case-sensitive.
type CategorySet map[string]struct{}

// NewCategorySet builds a set from a list of category terms.
func NewCategorySet(categories []string) CategorySet {
	s := make(CategorySet, len(categories))
	for _, c := range categories {
		s[c] = struct{}{}
	}
	return s
}

// Intersects reports whether any of terms is in the set.
func (s CategorySet) Intersects(terms []string) bool {
	for _, t := range terms {
		if _, ok := s[t]; ok {
			return true
		}
	}
	return false
}

// FilterAndExtract returns the digest entries of every feed entry that is
// cross-listed into cross and is a first version, in input order. Malformed
// entries are logged and skipped. entries is not modified.
func FilterAndExtract(entries []types.FeedEntry, cross []string, log *zap.Logger) []types.DigestEntry {
	if log == nil {
		log = zap.NewNop()
	}
	set := NewCategorySet(cross)

	out := make([]types.DigestEntry, 0)
	for i, e := range entries {
		de, ok, err := Extract(e, set)
		if err != nil {
			var ee *EntryExtractionError
			if errors.As(err, &ee) {
				ee.Index = i
			}
			log.Warn("skipping malformed entry", zap.Int("index", i), zap.String("id", e.ID), zap.Error(err))
			continue
		}
		if !ok {
			log.Debug("entry not selected", zap.Int("index", i), zap.String("id", e.ID))
			continue
		}
		out = append(out, de)
	}
	return out
}

// Extract applies the selection tests to one entry and, if it qualifies,
// returns its normalized fields. ok is false when the entry is not
// cross-listed into set or is not a first version. A non-nil error is an
// *EntryExtractionError.
func Extract(e types.FeedEntry, set CategorySet) (de types.DigestEntry, ok bool, err error) {
	all := categories(e.Tags)
	if len(all) == 0 {
		return types.DigestEntry{}, false, &EntryExtractionError{ID: e.ID, Err: errNoTags}
	}
	if !set.Intersects(all) {
		return types.DigestEntry{}, false, nil
	}

	if e.ID == "" {
		return types.DigestEntry{}, false, &EntryExtractionError{Err: errNoID}
	}
	id := ArxivID(e.ID)
	if !IsFirstVersion(id) {
		return types.DigestEntry{}, false, nil
	}

	de = types.DigestEntry{
		ArxivID:         id,
		IsFirstVersion:  true,
		PDFURL:          PDFLink(e.Links),
		Title:           e.Title,
		HasAuthors:      e.Authors != nil,
		Comment:         types.NoComment,
		PrimaryCategory: all[0],
		AllCategories:   all,
		Summary:         e.Summary,
	}
	if de.HasAuthors {
		de.Authors = make([]string, len(e.Authors))
		for i, a := range e.Authors {
			de.Authors[i] = a.Name
		}
	}
	if e.Comment != nil {
		de.Comment = *e.Comment
	}
	return de, true, nil
}

func categories(tags []types.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Term
	}
	return out
}

// ArxivID returns the part of an entry id after the last "/abs/". An id
// without the marker is returned unchanged.
func ArxivID(entryID string) string {
	if idx := strings.LastIndex(entryID, absMarker); idx >= 0 {
		return entryID[idx+len(absMarker):]
	}
	return entryID
}

// IsFirstVersion reports whether id ends in the literal "v1". This is a
// suffix test: "v11" does not match but "2610.0001v1" does.
func IsFirstVersion(id string) bool {
	return strings.HasSuffix(id, firstVersionSuffix)
}

// PDFLink returns the href of the first link titled "pdf" whose rel is not
// "alternate", or "" when there is none.
func PDFLink(links []types.Link) string {
	for _, l := range links {
		if l.Rel == alternateRel {
			continue
		}
		if l.Title == pdfLinkTitle {
			return l.Href
		}
	}
	return ""
}
