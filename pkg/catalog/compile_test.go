package catalog

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
	"github.com/triviaforge/triviaforge/pkg/catalog/parser"
	"github.com/xuri/excelize/v2"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeWorkbook builds an xlsx fixture with the two-row header convention.
func writeWorkbook(t *testing.T, name string, pages [][]interface{}, matchups [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", parser.PagesSheet)
	f.SetCellValue(parser.PagesSheet, "A1", "Pages")
	f.SetCellValue(parser.PagesSheet, "A2", "headers")
	for i, row := range pages {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow(parser.PagesSheet, cell, &row); err != nil {
			t.Fatalf("Failed to set page row: %v", err)
		}
	}

	if matchups != nil {
		if _, err := f.NewSheet(parser.MatchupSheet); err != nil {
			t.Fatalf("Failed to create matchup sheet: %v", err)
		}
		f.SetCellValue(parser.MatchupSheet, "A1", "Matchup Items")
		f.SetCellValue(parser.MatchupSheet, "A2", "headers")
		for i, row := range matchups {
			cell, _ := excelize.CoordinatesToCellName(1, i+3)
			if err := f.SetSheetRow(parser.MatchupSheet, cell, &row); err != nil {
				t.Fatalf("Failed to set matchup row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestCompileSingleBook(t *testing.T) {
	path := writeWorkbook(t,
		"nfl.xlsx",
		[][]interface{}{
			{1, "text", "", "Welcome to the NFL book."},
			{2, "list", "Last 3 champs", "Name them", "3 items – clues are years descending from 2024", 1, "/answers/nfl/2"},
			{3, "matchup", "Who won?", "", "", 1, "/answers/nfl/3"},
			{4, "poster", "typo'd type"},
		},
		[][]interface{}{
			{3, "Super Bowl LVIII", "2024", "Chiefs"},
			{3, "Super Bowl LVII", "2023", "Chiefs"},
		},
	)

	reg, warnings := Compile([]BookSource{{ID: "nfl", Workbook: path}}, DefaultOptions(), discard())

	book, ok := reg.Books["nfl"]
	if !ok {
		t.Fatal("Expected nfl book in registry")
	}
	if reg.DefaultBook != "nfl" {
		t.Errorf("Expected nfl as default book, got %q", reg.DefaultBook)
	}
	if book.TotalPages != models.DefaultTotalPages {
		t.Errorf("Expected configured ceiling %d, got %d", models.DefaultTotalPages, book.TotalPages)
	}

	// The typo'd row is skipped entirely; page 4 is a gap.
	if len(book.Pages) != 3 {
		t.Fatalf("Expected 3 authored pages, got %d", len(book.Pages))
	}
	if _, exists := book.Pages[4]; exists {
		t.Error("Unknown-type row should not produce a page")
	}
	if warnings.Count() != 1 {
		t.Errorf("Expected exactly 1 warning, got %d: %+v", warnings.Count(), warnings.All())
	}

	list := book.Pages[2].(models.ListPage)
	if len(list.Items) != 3 || list.Items[0].Clue != models.NumberClue(2024) {
		t.Errorf("Unexpected list items: %+v", list.Items)
	}

	matchup := book.Pages[3].(models.MatchupPage)
	if len(matchup.Items) != 2 || matchup.Items[1].CenterText != "Super Bowl LVII" {
		t.Errorf("Unexpected matchup items: %+v", matchup.Items)
	}

	// The gap is synthesized at query time, not stored.
	if _, isText := book.PageConfiguration(4).(models.TextPage); !isText {
		t.Error("Expected synthesized text page for the gap")
	}
}

func TestCompileMissingWorkbookSkipsBook(t *testing.T) {
	path := writeWorkbook(t, "nba.xlsx", [][]interface{}{
		{1, "text", "", "NBA book."},
	}, nil)

	reg, warnings := Compile([]BookSource{
		{ID: "nfl", Workbook: "/nonexistent/nfl.xlsx", Default: true},
		{ID: "nba", Workbook: path},
	}, DefaultOptions(), discard())

	if _, ok := reg.Books["nfl"]; ok {
		t.Error("Missing workbook should omit the book")
	}
	if _, ok := reg.Books["nba"]; !ok {
		t.Fatal("Later books must still compile after an earlier failure")
	}

	// The default flag pointed at the missing book, so the alias falls
	// back to the first compiled one.
	if reg.DefaultBook != "nba" {
		t.Errorf("Expected default book nba, got %q", reg.DefaultBook)
	}

	found := false
	for _, w := range warnings.All() {
		if w.Code == models.WarnWorkbookNotFound && w.Book == "nfl" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a workbook-not-found warning for nfl, got %+v", warnings.All())
	}
}

func TestCompileMissingMatchupSheetIsOptional(t *testing.T) {
	path := writeWorkbook(t, "mlb.xlsx", [][]interface{}{
		{1, "matchup", "World Series winners"},
	}, nil)

	reg, warnings := Compile([]BookSource{{ID: "mlb", Workbook: path}}, DefaultOptions(), discard())

	book, ok := reg.Books["mlb"]
	if !ok {
		t.Fatal("Book without a matchup sheet should still compile")
	}

	matchup := book.Pages[1].(models.MatchupPage)
	if len(matchup.Items) != 0 {
		t.Errorf("Expected zero matchup items, got %+v", matchup.Items)
	}

	// One warning for the absent optional sheet, one for the empty
	// matchup page.
	codes := map[models.WarningCode]int{}
	for _, w := range warnings.All() {
		codes[w.Code]++
	}
	if codes[models.WarnSheetNotFound] != 1 || codes[models.WarnEmptyMatchup] != 1 {
		t.Errorf("Unexpected warnings: %+v", warnings.All())
	}
}

func TestCompileOutOfRangePageRows(t *testing.T) {
	path := writeWorkbook(t, "nfl.xlsx", [][]interface{}{
		{1, "text", "", "In range."},
		{0, "list", "Lost row", "", "not even a count here"},
		{200, "text", "", "Beyond the ceiling."},
	}, nil)

	reg, warnings := Compile([]BookSource{{ID: "nfl", Workbook: path}}, DefaultOptions(), discard())

	book := reg.Books["nfl"]
	if len(book.Pages) != 1 {
		t.Fatalf("Expected only the in-range page, got %+v", book.Pages)
	}
	if _, exists := book.Pages[200]; exists {
		t.Error("Out-of-ceiling row must not be stored; PageExists(200) is false")
	}

	// One warning per dropped row, and none from normalizing them: the
	// page-0 row's unparseable items note must not add a pattern warning.
	if warnings.Count() != 2 {
		t.Fatalf("Expected exactly 2 warnings, got %d: %+v", warnings.Count(), warnings.All())
	}
	for _, w := range warnings.All() {
		if w.Code != models.WarnInvalidPageNum {
			t.Errorf("Expected invalid-page-number warnings only, got %+v", w)
		}
	}
}

func TestCompileNoBooks(t *testing.T) {
	reg, warnings := Compile(nil, DefaultOptions(), discard())

	if len(reg.Books) != 0 || reg.DefaultBook != "" {
		t.Errorf("Expected empty registry, got %+v", reg)
	}
	if warnings.Count() != 0 {
		t.Errorf("Expected no warnings, got %d", warnings.Count())
	}
}
