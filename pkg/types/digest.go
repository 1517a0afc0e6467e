// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NoComment is substituted when an entry has no comment field.
const NoComment = "No comment found"

// DigestEntry holds the normalized metadata of one qualifying submission.
type DigestEntry struct {
	// ArxivID is the identifier after the abstract-page path, version
	// included (e.g. "2610.01234v1").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// IsFirstVersion reports whether ArxivID ends in "v1".
	IsFirstVersion bool `json:"is_first_version" yaml:"is_first_version"`

	// PDFURL is the href of the entry's pdf link, or empty if it has none.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	Title string `json:"title" yaml:"title"`

	// Authors lists author names in source order. Only meaningful when
	// HasAuthors is set.
	Authors []string `json:"authors" yaml:"authors"`

	// HasAuthors is false when the source entry had no author data; the
	// authors line is then omitted from the rendering.
	HasAuthors bool `json:"has_authors" yaml:"has_authors"`

	// Comment is the entry comment, or NoComment.
	Comment string `json:"comment" yaml:"comment"`

	PrimaryCategory string   `json:"primary_category" yaml:"primary_category"`
	AllCategories   []string `json:"all_categories" yaml:"all_categories"`
	Summary         string   `json:"summary" yaml:"summary"`
}

// Digest is the assembled report of one run. It is not modified after
// assembly.
type Digest struct {
	Title       string        `json:"title" yaml:"title"`
	FeedUpdated string        `json:"feed_updated" yaml:"feed_updated"`
	Entries     []DigestEntry `json:"entries" yaml:"entries"`
	HTMLBody    string        `json:"-" yaml:"-"`
}
