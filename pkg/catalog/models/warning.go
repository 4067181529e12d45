package models

import "fmt"

// WarningCode classifies a recoverable compilation condition.
type WarningCode string

const (
	WarnWorkbookNotFound WarningCode = "workbook_not_found"
	WarnSheetNotFound    WarningCode = "sheet_not_found"
	WarnPattern          WarningCode = "pattern"
	WarnEmptyMatchup     WarningCode = "empty_matchup"
	WarnUnknownPageType  WarningCode = "unknown_page_type"
	WarnInvalidPageNum   WarningCode = "invalid_page_number"
)

// Warning records one recoverable condition with enough context to locate
// the offending spreadsheet row. Nothing that produces a warning aborts a
// compilation run.
type Warning struct {
	// Book is the book identifier being compiled.
	Book string
	// Page is the page number involved, 0 when not row-scoped.
	Page int
	// Code classifies the condition.
	Code WarningCode
	// Detail is the offending text or a short explanation.
	Detail string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s: %s", w.Book, w.Page, w.Code, w.Detail)
	}
	return fmt.Sprintf("[%s] %s: %s", w.Book, w.Code, w.Detail)
}

// WarningLog accumulates warnings across one compilation run. The zero
// value is ready to use. It is not safe for concurrent use; compilation
// is strictly sequential.
type WarningLog struct {
	warnings []Warning
}

// Add appends one warning.
func (l *WarningLog) Add(w Warning) {
	l.warnings = append(l.warnings, w)
}

// Count returns the number of accumulated warnings.
func (l *WarningLog) Count() int {
	return len(l.warnings)
}

// All returns the accumulated warnings in order of occurrence.
func (l *WarningLog) All() []Warning {
	return l.warnings
}
