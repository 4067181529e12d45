package models

// PageType discriminates the four page variants.
type PageType string

const (
	PageList    PageType = "list"
	PageMatchup PageType = "matchup"
	PageText    PageType = "text"
	PageTeams   PageType = "teams"
)

// ActionPosition is the horizontal placement of an action decoration.
type ActionPosition string

const (
	PositionLeft  ActionPosition = "left"
	PositionRight ActionPosition = "right"
)

// DefaultActionIcon is used when the authored icon cell is blank.
const DefaultActionIcon = "📌"

// ActionContent is an optional page decoration: a rotated note with an
// icon, placed beside the page body. Content may carry inline HTML.
type ActionContent struct {
	Content  string
	Position ActionPosition
	// Rotation is the tilt in degrees, signed.
	Rotation int
	// Icon is a single-glyph string.
	Icon string
}

// Page is the closed union over the four page content shapes. Only the
// variants in this package implement it; the marker method keeps the set
// closed so a switch over concrete types can be exhaustive.
type Page interface {
	// Type returns the variant discriminant.
	Type() PageType
	// AnswerKey returns the page's answer key URL.
	AnswerKey() string

	pageVariant()
}

// ListPage is a quiz page with an ordered clue list.
type ListPage struct {
	Title        string
	Description  string
	Items        []ListItem
	Columns      int
	AnswerKeyURL string
	Action       *ActionContent
}

// MatchupPage is a quiz page pairing center items against two sides.
type MatchupPage struct {
	Title        string
	Description  string
	Items        []MatchupItem
	Columns      int
	AnswerKeyURL string
	Action       *ActionContent
}

// TextPage is a prose-only page. It carries no title or items; the
// description column becomes its sole content.
type TextPage struct {
	Content      string
	AnswerKeyURL string
}

// TeamsPage is a team-roster style page with no item list.
type TeamsPage struct {
	Title        string
	Description  string
	AnswerKeyURL string
	Action       *ActionContent
}

func (p ListPage) Type() PageType    { return PageList }
func (p MatchupPage) Type() PageType { return PageMatchup }
func (p TextPage) Type() PageType    { return PageText }
func (p TeamsPage) Type() PageType   { return PageTeams }

func (p ListPage) AnswerKey() string    { return p.AnswerKeyURL }
func (p MatchupPage) AnswerKey() string { return p.AnswerKeyURL }
func (p TextPage) AnswerKey() string    { return p.AnswerKeyURL }
func (p TeamsPage) AnswerKey() string   { return p.AnswerKeyURL }

func (ListPage) pageVariant()    {}
func (MatchupPage) pageVariant() {}
func (TextPage) pageVariant()    {}
func (TeamsPage) pageVariant()   {}
