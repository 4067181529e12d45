package catalog

import (
	"errors"
	"fmt"
)

// ErrWorkbookNotFound indicates a configured book's workbook file does not
// exist or cannot be opened.
var ErrWorkbookNotFound = errors.New("workbook not found")

// BookError wraps an error with the book it occurred in. All book-level
// errors are recoverable-by-skip: the compiler drops the book and keeps
// going.
type BookError struct {
	Book string
	Err  error
}

func (e *BookError) Error() string {
	return fmt.Sprintf("book %q: %v", e.Book, e.Err)
}

func (e *BookError) Unwrap() error {
	return e.Err
}
