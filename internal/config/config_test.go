package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
)

func TestLoadDefaults(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for an explicitly named missing config file")
	}

	// No explicit file and none on the search path: defaults only.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TotalPages != models.DefaultTotalPages {
		t.Errorf("Expected default total pages %d, got %d", models.DefaultTotalPages, cfg.TotalPages)
	}
	if cfg.Output != "catalog.json" {
		t.Errorf("Expected default output path, got %q", cfg.Output)
	}
	if len(cfg.Books) != 0 {
		t.Errorf("Expected no books, got %+v", cfg.Books)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.yaml")
	data := `total_pages: 60
output: out/catalog.json
books:
  - id: nfl
    workbook: data/nfl.xlsx
    default: true
  - id: nba
    workbook: data/nba.xlsx
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TotalPages != 60 {
		t.Errorf("Expected total pages 60, got %d", cfg.TotalPages)
	}
	if cfg.AnswerKeyTemplate != models.DefaultAnswerKeyTemplate {
		t.Errorf("Expected default answer key template, got %q", cfg.AnswerKeyTemplate)
	}
	if len(cfg.Books) != 2 {
		t.Fatalf("Expected 2 books, got %d", len(cfg.Books))
	}
	if cfg.Books[0].ID != "nfl" || !cfg.Books[0].Default || cfg.Books[1].Workbook != "data/nba.xlsx" {
		t.Errorf("Unexpected books: %+v", cfg.Books)
	}
}
