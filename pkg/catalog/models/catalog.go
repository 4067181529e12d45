package models

import "fmt"

// DefaultTotalPages is the configured page ceiling of a printed book. It is
// a fixed capacity, never derived from how many rows were authored.
const DefaultTotalPages = 100

// DefaultAnswerKeyTemplate formats the synthesized answer key URL for
// unauthored pages: book id, then page number.
const DefaultAnswerKeyTemplate = "/answer-keys/%s/page-%d"

// BookCatalog is the complete validated page set for one book. Authored
// pages are keyed by page number; unauthored in-range numbers are
// synthesized on query, never stored. Immutable after compilation.
type BookCatalog struct {
	// ID is the short book identifier, e.g. "nfl".
	ID string
	// TotalPages is the page ceiling; queries are bounded by [1, TotalPages].
	TotalPages int
	// AnswerKeyTemplate formats fallback answer key URLs (book id, page number).
	AnswerKeyTemplate string
	// Pages holds the authored page variants by page number.
	Pages map[int]Page
}

// PageExists reports whether pageNum is within the book's page range,
// regardless of whether that page was authored.
func (b *BookCatalog) PageExists(pageNum int) bool {
	return pageNum >= 1 && pageNum <= b.TotalPages
}

// PageConfiguration resolves a page number to its variant. Unauthored page
// numbers get a synthesized text page referencing the book and page.
func (b *BookCatalog) PageConfiguration(pageNum int) Page {
	if p, ok := b.Pages[pageNum]; ok {
		return p
	}
	return b.fallbackPage(pageNum)
}

// AnswerKeyURL resolves a page number to its answer key URL, synthesizing
// the templated fallback for unauthored pages.
func (b *BookCatalog) AnswerKeyURL(pageNum int) string {
	return b.PageConfiguration(pageNum).AnswerKey()
}

func (b *BookCatalog) fallbackPage(pageNum int) Page {
	tmpl := b.AnswerKeyTemplate
	if tmpl == "" {
		tmpl = DefaultAnswerKeyTemplate
	}
	return TextPage{
		Content:      fmt.Sprintf("Page %d of the %s book has not been written yet.", pageNum, b.ID),
		AnswerKeyURL: fmt.Sprintf(tmpl, b.ID, pageNum),
	}
}

// Registry maps book identifiers to their catalogs. Built once per
// compilation run, immutable afterwards; the query side only reads it.
type Registry struct {
	// DefaultBook is the book id used when a caller names no book.
	DefaultBook string
	// Books holds one catalog per successfully compiled book.
	Books map[string]*BookCatalog
}

// Book returns the catalog for id, falling back to the default book when
// id is empty. The second result is false when no such book exists.
func (r *Registry) Book(id string) (*BookCatalog, bool) {
	if id == "" {
		id = r.DefaultBook
	}
	b, ok := r.Books[id]
	return b, ok
}

// PageConfiguration resolves (book, pageNum) to a page variant.
func (r *Registry) PageConfiguration(book string, pageNum int) (Page, error) {
	b, ok := r.Book(book)
	if !ok {
		return nil, fmt.Errorf("unknown book %q", book)
	}
	return b.PageConfiguration(pageNum), nil
}
