// Package catalog compiles authored trivia workbooks into a validated
// page catalog registry.
package catalog

import "github.com/triviaforge/triviaforge/pkg/catalog/models"

// BookSource identifies one configured book and its workbook file.
type BookSource struct {
	// ID is the short book identifier, e.g. "nfl".
	ID string
	// Workbook is the path to the book's xlsx file.
	Workbook string
	// Default marks this book as the registry's default alias.
	Default bool
}

// Options configures a compilation run.
type Options struct {
	// TotalPages is the page ceiling of every compiled book. It is a
	// configured capacity, independent of how many rows were authored.
	TotalPages int
	// AnswerKeyTemplate formats synthesized answer key URLs for
	// unauthored pages (book id, then page number).
	AnswerKeyTemplate string
}

// DefaultOptions returns default compilation options.
func DefaultOptions() Options {
	return Options{
		TotalPages:        models.DefaultTotalPages,
		AnswerKeyTemplate: models.DefaultAnswerKeyTemplate,
	}
}

func (o Options) withDefaults() Options {
	if o.TotalPages <= 0 {
		o.TotalPages = models.DefaultTotalPages
	}
	if o.AnswerKeyTemplate == "" {
		o.AnswerKeyTemplate = models.DefaultAnswerKeyTemplate
	}
	return o
}
