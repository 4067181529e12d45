// Package parser reads authored workbook sheets and turns raw rows into
// typed page variants.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names fixed by the authoring template.
const (
	PagesSheet   = "Pages"
	MatchupSheet = "Matchup Items"
)

// headerRows is the fixed-size header block at the top of every authored
// sheet; data starts on the row after it.
const headerRows = 2

// ErrSheetNotFound indicates a named sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet returns the data rows of a sheet as column-name keyed raw rows,
// skipping the header block and mapping cells positionally onto columns.
// Absent cells become empty strings; rows with no data at all are skipped.
func ReadSheet(f *excelize.File, sheet string, columns []string) ([]models.RawRow, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var result []models.RawRow
	for rowIdx, row := range rows {
		if rowIdx < headerRows {
			continue
		}
		raw := make(models.RawRow, len(columns))
		hasData := false
		for colIdx, name := range columns {
			value := ""
			if colIdx < len(row) {
				value = row[colIdx]
			}
			if value != "" {
				hasData = true
			}
			raw[name] = value
		}
		if hasData {
			result = append(result, raw)
		}
	}
	return result, nil
}

// ReadPageRows reads the mandatory Pages sheet into fixed-shape records.
func ReadPageRows(f *excelize.File) ([]models.PageRow, error) {
	raws, err := ReadSheet(f, PagesSheet, models.PageColumns)
	if err != nil {
		return nil, err
	}
	pages := make([]models.PageRow, 0, len(raws))
	for _, raw := range raws {
		pages = append(pages, models.PageRow{
			PageNum:        parsePageNum(raw["pageNum"]),
			Type:           raw["type"],
			Title:          raw["title"],
			Description:    raw["description"],
			ItemsNote:      raw["itemsNote"],
			Columns:        raw["columns"],
			AnswerKeyURL:   raw["answerKeyUrl"],
			ActionNote:     raw["actionNote"],
			ActionPosition: raw["actionPosition"],
			ActionRotation: raw["actionRotation"],
			ActionIcon:     raw["actionIcon"],
		})
	}
	return pages, nil
}

// ReadMatchupRows reads the optional Matchup Items sheet into fixed-shape
// records.
func ReadMatchupRows(f *excelize.File) ([]models.MatchupRow, error) {
	raws, err := ReadSheet(f, MatchupSheet, models.MatchupColumns)
	if err != nil {
		return nil, err
	}
	items := make([]models.MatchupRow, 0, len(raws))
	for _, raw := range raws {
		items = append(items, models.MatchupRow{
			PageNum:    parsePageNum(raw["pageNum"]),
			CenterText: raw["centerText"],
			Context:    raw["context"],
			Answer:     raw["answer"],
		})
	}
	return items, nil
}

// parsePageNum parses a page number cell. Blank or non-numeric cells parse
// to 0, which downstream code treats as unattributable.
func parsePageNum(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
