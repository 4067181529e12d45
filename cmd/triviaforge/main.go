// Package main provides the CLI entry point for triviaforge.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/triviaforge/triviaforge/internal/config"
	"github.com/triviaforge/triviaforge/pkg/catalog"
	"github.com/triviaforge/triviaforge/pkg/catalog/output"
)

var (
	cfgFile      string
	outputPath   string
	catalogPath  string
	outputFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triviaforge",
		Short: "Compile spreadsheet-authored trivia books into a page catalog",
		Long: `triviaforge reads authored trivia workbooks (a Pages sheet plus an
optional Matchup Items sheet per book) and compiles them into a single
validated catalog artifact that the site renderer queries by page number.`,
	}

	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile all configured books and write the catalog artifact",
		Args:  cobra.NoArgs,
		RunE:  runCompile,
	}
	compileCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./books.yaml or ~/.triviaforge/books.yaml)")
	compileCmd.Flags().StringVarP(&outputPath, "output", "o", "", "artifact path (default: from config)")

	showCmd := &cobra.Command{
		Use:   "show [book] [page]",
		Short: "Resolve one page configuration from a compiled catalog",
		Args:  cobra.ExactArgs(2),
		RunE:  runShow,
	}
	showCmd.Flags().StringVar(&catalogPath, "catalog", "catalog.json", "catalog artifact path")
	showCmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(compileCmd, showCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	books := make([]catalog.BookSource, 0, len(cfg.Books))
	for _, b := range cfg.Books {
		books = append(books, catalog.BookSource{ID: b.ID, Workbook: b.Workbook, Default: b.Default})
	}

	opts := catalog.Options{
		TotalPages:        cfg.TotalPages,
		AnswerKeyTemplate: cfg.AnswerKeyTemplate,
	}

	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run", runID)

	reg, warnings := catalog.Compile(books, opts, logger)

	artifact := output.BuildArtifact(reg, runID, time.Now())
	data, err := artifact.Encode()
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	path := outputPath
	if path == "" {
		path = cfg.Output
	}
	if err := output.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	// Run summary: pages per book, then the warning roll-up the operator
	// reviews before publishing.
	ids := make([]string, 0, len(reg.Books))
	for id := range reg.Books {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("%s: %d pages\n", id, len(reg.Books[id].Pages))
	}
	for _, w := range warnings.All() {
		fmt.Printf("warning: %s\n", w)
	}
	fmt.Printf("wrote %s (%d books, %d warnings)\n", path, len(reg.Books), warnings.Count())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	pageNum, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid page number: %s", args[1])
	}

	reg, err := output.Load(catalogPath)
	if err != nil {
		return err
	}

	book, ok := reg.Book(args[0])
	if !ok {
		return fmt.Errorf("unknown book %q", args[0])
	}
	if !book.PageExists(pageNum) {
		return fmt.Errorf("page %d out of range [1, %d]", pageNum, book.TotalPages)
	}

	page := output.RenderPage(pageNum, book.PageConfiguration(pageNum))

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		// Round-trip through JSON so yaml output follows the artifact's
		// field names rather than Go struct names.
		data, err := json.Marshal(page)
		if err != nil {
			return err
		}
		var generic map[string]any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("invalid format: %s (must be yaml or json)", outputFormat)
	}
	return nil
}
