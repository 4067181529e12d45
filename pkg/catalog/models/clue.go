package models

// ClueKind discriminates the two clue value shapes.
type ClueKind string

const (
	// ClueNumber is a numeric clue (a year or rank value).
	ClueNumber ClueKind = "number"
	// ClueText is a free-text clue, possibly empty.
	ClueText ClueKind = "text"
)

// Clue is the per-item hint shown on a list page. The kind determines
// which of Number or Text is meaningful. Clues are comparable values and
// are never mutated after construction.
type Clue struct {
	Kind   ClueKind
	Number int
	Text   string
}

// NumberClue returns a numeric clue.
func NumberClue(n int) Clue {
	return Clue{Kind: ClueNumber, Number: n}
}

// TextClue returns a text clue.
func TextClue(s string) Clue {
	return Clue{Kind: ClueText, Text: s}
}

// ListItem is one entry of a list page. Slice order is presentation order
// (1-based display index).
type ListItem struct {
	Clue Clue
}

// MatchupItem is one entry of a matchup page, grouped from the Matchup
// Items sheet in original row order.
type MatchupItem struct {
	// CenterText is the item text shown in the matchup center column.
	CenterText string
	// Context is the supporting context line for the item.
	Context string
}
