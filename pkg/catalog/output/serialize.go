// Package output serializes a compiled catalog registry to its persisted
// artifact and loads it back for the query side.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
)

// ArtifactVersion identifies the artifact layout. Bumped on any change to
// the page object shape or the generator encodings.
const ArtifactVersion = 1

// Artifact is the persisted form of a catalog registry. Identical input
// produces byte-identical output modulo GeneratedAt and RunID: books are
// emitted in sorted id order, pages in page-number order, and fields in a
// fixed order per variant.
type Artifact struct {
	Version     int                 `json:"version"`
	GeneratedAt string              `json:"generatedAt"`
	RunID       string              `json:"runId,omitempty"`
	DefaultBook string              `json:"defaultBook,omitempty"`
	Books       map[string]bookJSON `json:"books"`
}

type bookJSON struct {
	TotalPages        int        `json:"totalPages"`
	AnswerKeyTemplate string     `json:"answerKeyTemplate"`
	Pages             []pageJSON `json:"pages"`
}

type pageJSON struct {
	Num          int           `json:"num"`
	Type         string        `json:"type"`
	Title        string        `json:"title,omitempty"`
	Description  string        `json:"description,omitempty"`
	Content      string        `json:"content,omitempty"`
	Items        *clueItems    `json:"items,omitempty"`
	MatchupItems []matchupJSON `json:"matchupItems,omitempty"`
	Columns      int           `json:"columns,omitempty"`
	AnswerKeyURL string        `json:"answerKeyUrl,omitempty"`
	Action       *actionJSON   `json:"actionContent,omitempty"`
}

// clueItems is either a closed-form generator or a literal enumeration.
// Arithmetic year descents and exact #1..#N rank runs serialize as
// generators; everything else enumerates.
type clueItems struct {
	Generator string     `json:"generator,omitempty"`
	Start     int        `json:"start,omitempty"`
	Count     int        `json:"count,omitempty"`
	Literal   []clueJSON `json:"literal,omitempty"`
}

const (
	generatorYears = "yearsDescending"
	generatorRanks = "ranks"
)

type clueJSON struct {
	Number *int    `json:"number,omitempty"`
	Text   *string `json:"text,omitempty"`
}

type matchupJSON struct {
	CenterText string `json:"centerText"`
	Context    string `json:"context"`
}

type actionJSON struct {
	Content  string `json:"content"`
	Position string `json:"position"`
	Rotation int    `json:"rotation"`
	Icon     string `json:"icon"`
}

// BuildArtifact renders a registry into its serializable form.
func BuildArtifact(reg *models.Registry, runID string, now time.Time) *Artifact {
	a := &Artifact{
		Version:     ArtifactVersion,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		RunID:       runID,
		DefaultBook: reg.DefaultBook,
		Books:       make(map[string]bookJSON, len(reg.Books)),
	}
	for id, book := range reg.Books {
		a.Books[id] = buildBook(book)
	}
	return a
}

func buildBook(book *models.BookCatalog) bookJSON {
	nums := make([]int, 0, len(book.Pages))
	for num := range book.Pages {
		nums = append(nums, num)
	}
	sort.Ints(nums)

	pages := make([]pageJSON, 0, len(nums))
	for _, num := range nums {
		pages = append(pages, buildPage(num, book.Pages[num]))
	}
	return bookJSON{
		TotalPages:        book.TotalPages,
		AnswerKeyTemplate: book.AnswerKeyTemplate,
		Pages:             pages,
	}
}

func buildPage(num int, page models.Page) pageJSON {
	switch p := page.(type) {
	case models.ListPage:
		return pageJSON{
			Num:          num,
			Type:         string(models.PageList),
			Title:        p.Title,
			Description:  p.Description,
			Items:        buildClueItems(p.Items),
			Columns:      p.Columns,
			AnswerKeyURL: p.AnswerKeyURL,
			Action:       buildAction(p.Action),
		}
	case models.MatchupPage:
		items := make([]matchupJSON, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, matchupJSON{CenterText: it.CenterText, Context: it.Context})
		}
		return pageJSON{
			Num:          num,
			Type:         string(models.PageMatchup),
			Title:        p.Title,
			Description:  p.Description,
			MatchupItems: items,
			Columns:      p.Columns,
			AnswerKeyURL: p.AnswerKeyURL,
			Action:       buildAction(p.Action),
		}
	case models.TextPage:
		return pageJSON{
			Num:          num,
			Type:         string(models.PageText),
			Content:      p.Content,
			AnswerKeyURL: p.AnswerKeyURL,
		}
	case models.TeamsPage:
		return pageJSON{
			Num:          num,
			Type:         string(models.PageTeams),
			Title:        p.Title,
			Description:  p.Description,
			AnswerKeyURL: p.AnswerKeyURL,
			Action:       buildAction(p.Action),
		}
	default:
		// The Page union is closed; this is unreachable.
		panic(fmt.Sprintf("unhandled page variant %T", page))
	}
}

// buildClueItems picks the closed-form generator encoding when the clue
// sequence matches one exactly, otherwise enumerates literally.
func buildClueItems(items []models.ListItem) *clueItems {
	if start, ok := yearsDescent(items); ok {
		return &clueItems{Generator: generatorYears, Start: start, Count: len(items)}
	}
	if ranksRun(items) {
		return &clueItems{Generator: generatorRanks, Count: len(items)}
	}

	literal := make([]clueJSON, 0, len(items))
	for _, it := range items {
		switch it.Clue.Kind {
		case models.ClueNumber:
			n := it.Clue.Number
			literal = append(literal, clueJSON{Number: &n})
		default:
			t := it.Clue.Text
			literal = append(literal, clueJSON{Text: &t})
		}
	}
	return &clueItems{Literal: literal}
}

// yearsDescent reports whether items is a non-empty numeric sequence
// strictly descending by exactly 1, returning its starting value.
func yearsDescent(items []models.ListItem) (int, bool) {
	if len(items) == 0 {
		return 0, false
	}
	start := items[0].Clue.Number
	for i, it := range items {
		if it.Clue.Kind != models.ClueNumber || it.Clue.Number != start-i {
			return 0, false
		}
	}
	return start, true
}

// ranksRun reports whether items is exactly the text sequence "#1".."#N".
func ranksRun(items []models.ListItem) bool {
	if len(items) == 0 {
		return false
	}
	for i, it := range items {
		if it.Clue.Kind != models.ClueText || it.Clue.Text != "#"+strconv.Itoa(i+1) {
			return false
		}
	}
	return true
}

func buildAction(a *models.ActionContent) *actionJSON {
	if a == nil {
		return nil
	}
	return &actionJSON{
		Content:  a.Content,
		Position: string(a.Position),
		Rotation: a.Rotation,
		Icon:     a.Icon,
	}
}

// Encode renders the artifact as indented JSON. Map keys marshal in
// sorted order, so output is stable across runs.
func (a *Artifact) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteFile writes the encoded artifact as one whole-file operation:
// a temp file in the target directory renamed over the destination.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	// CreateTemp opens 0600; the artifact is a published build output.
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// RenderPage returns the serializable form of one resolved page, for
// callers that print a single page configuration.
func RenderPage(num int, page models.Page) any {
	return buildPage(num, page)
}
