// Package models defines the domain types for the trivia book page catalog.
package models

// RawRow maps a sheet column name to its cell value as read from the
// workbook. Absent cells are empty strings, never missing keys.
type RawRow map[string]string

// PageColumns is the fixed column layout of the Pages sheet, in sheet order.
var PageColumns = []string{
	"pageNum", "type", "title", "description", "itemsNote", "columns",
	"answerKeyUrl", "actionNote", "actionPosition", "actionRotation", "actionIcon",
}

// MatchupColumns is the fixed column layout of the Matchup Items sheet.
// The answer column feeds the printed answer key, not the page model.
var MatchupColumns = []string{"pageNum", "centerText", "context", "answer"}

// PageRow is one authored row of the Pages sheet, shaped at the reader
// boundary so downstream code never touches column names.
type PageRow struct {
	// PageNum is the authored page number (1-based).
	PageNum int
	// Type is the raw page type cell (list, matchup, text, teams).
	Type string
	// Title is the page heading.
	Title string
	// Description is the page prompt, or the full content for text pages.
	Description string
	// ItemsNote is the free-text clue pattern description for list pages.
	ItemsNote string
	// Columns is the raw column-count cell.
	Columns string
	// AnswerKeyURL is the authored answer key link.
	AnswerKeyURL string
	// ActionNote is the optional decoration content (may carry HTML).
	ActionNote string
	// ActionPosition is the raw decoration position cell.
	ActionPosition string
	// ActionRotation is the raw decoration rotation cell, in degrees.
	ActionRotation string
	// ActionIcon is the decoration icon glyph.
	ActionIcon string
}

// MatchupRow is one authored row of the Matchup Items sheet.
type MatchupRow struct {
	// PageNum is the page the item belongs to; non-positive means unattributable.
	PageNum int
	// CenterText is the item text shown in the matchup center column.
	CenterText string
	// Context is the supporting context line for the item.
	Context string
	// Answer is the answer-key text; read but not carried into pages.
	Answer string
}
