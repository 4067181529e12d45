package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
	"github.com/triviaforge/triviaforge/pkg/catalog/parser"
	"github.com/xuri/excelize/v2"
)

// Compile builds the catalog registry from the configured books. Books are
// compiled strictly sequentially; a book whose workbook or mandatory Pages
// sheet is missing is skipped with a warning and never aborts the run. An
// all-books-failed run yields an empty registry, which downstream
// consumers treat as "no content".
func Compile(books []BookSource, opts Options, logger *slog.Logger) (*models.Registry, *models.WarningLog) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &compiler{
		opts:     opts.withDefaults(),
		logger:   logger,
		warnings: &models.WarningLog{},
	}

	reg := &models.Registry{Books: make(map[string]*models.BookCatalog)}
	for _, src := range books {
		book, err := c.compileBook(src)
		if err != nil {
			code := models.WarnSheetNotFound
			if errors.Is(err, ErrWorkbookNotFound) {
				code = models.WarnWorkbookNotFound
			}
			c.warn(models.Warning{Book: src.ID, Code: code, Detail: err.Error()})
			continue
		}
		reg.Books[src.ID] = book
		logger.Info("compiled book", "book", src.ID, "pages", len(book.Pages))
	}

	reg.DefaultBook = defaultBook(books, reg)
	return reg, c.warnings
}

type compiler struct {
	opts     Options
	logger   *slog.Logger
	warnings *models.WarningLog
}

func (c *compiler) warn(w models.Warning) {
	c.warnings.Add(w)
	c.logger.Warn("compile warning",
		"book", w.Book, "page", w.Page, "code", string(w.Code), "detail", w.Detail)
}

// compileBook runs reader, joiner, and normalizer for one book. The
// workbook handle is scoped to this call; it is closed before the next
// book starts.
func (c *compiler) compileBook(src BookSource) (*models.BookCatalog, error) {
	if _, err := os.Stat(src.Workbook); err != nil {
		return nil, &BookError{Book: src.ID, Err: fmt.Errorf("%w: %s", ErrWorkbookNotFound, src.Workbook)}
	}

	f, err := excelize.OpenFile(src.Workbook)
	if err != nil {
		return nil, &BookError{Book: src.ID, Err: fmt.Errorf("%w: %s: %v", ErrWorkbookNotFound, src.Workbook, err)}
	}
	defer f.Close()

	// The Pages sheet is mandatory; without it the book cannot be compiled.
	pageRows, err := parser.ReadPageRows(f)
	if err != nil {
		return nil, &BookError{Book: src.ID, Err: err}
	}

	// The Matchup Items sheet is optional: a book with no matchup pages
	// simply omits it.
	matchupRows, err := parser.ReadMatchupRows(f)
	if err != nil {
		if !errors.Is(err, parser.ErrSheetNotFound) {
			return nil, &BookError{Book: src.ID, Err: err}
		}
		c.warn(models.Warning{Book: src.ID, Code: models.WarnSheetNotFound, Detail: parser.MatchupSheet})
		matchupRows = nil
	}
	matchups := parser.GroupMatchups(matchupRows)

	book := &models.BookCatalog{
		ID:                src.ID,
		TotalPages:        c.opts.TotalPages,
		AnswerKeyTemplate: c.opts.AnswerKeyTemplate,
		Pages:             make(map[int]models.Page),
	}
	for _, row := range pageRows {
		// Rows outside [1, TotalPages] cannot be placed in the book; warn
		// before normalizing so their clue warnings don't point at a page
		// the catalog will never hold.
		if row.PageNum < 1 || row.PageNum > book.TotalPages {
			c.warn(models.Warning{
				Book:   src.ID,
				Page:   row.PageNum,
				Code:   models.WarnInvalidPageNum,
				Detail: fmt.Sprintf("page number out of range [1, %d]", book.TotalPages),
			})
			continue
		}
		page, ok := parser.NormalizePage(src.ID, row, matchups, c.warnings)
		if !ok {
			c.logger.Warn("skipped page row",
				"book", src.ID, "page", row.PageNum, "type", row.Type)
			continue
		}
		book.Pages[row.PageNum] = page
	}
	return book, nil
}

// defaultBook picks the registry's default alias: the first book marked
// default that actually compiled, else the first compiled book in
// configuration order.
func defaultBook(books []BookSource, reg *models.Registry) string {
	for _, src := range books {
		if src.Default {
			if _, ok := reg.Books[src.ID]; ok {
				return src.ID
			}
		}
	}
	for _, src := range books {
		if _, ok := reg.Books[src.ID]; ok {
			return src.ID
		}
	}
	return ""
}
