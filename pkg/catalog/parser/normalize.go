package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
)

// NormalizePage converts one authored page row into its typed variant.
// The second result is false when the row's type is unrecognized; such
// rows are skipped entirely and leave a gap the query side fills later.
func NormalizePage(bookID string, row models.PageRow, matchups map[int][]models.MatchupItem, log *models.WarningLog) (models.Page, bool) {
	switch strings.ToLower(strings.TrimSpace(row.Type)) {
	case "list":
		return models.ListPage{
			Title:        row.Title,
			Description:  row.Description,
			Items:        InferClues(bookID, row.PageNum, row.ItemsNote, log),
			Columns:      parseColumns(row.Columns),
			AnswerKeyURL: row.AnswerKeyURL,
			Action:       parseAction(row),
		}, true

	case "matchup":
		items := matchups[row.PageNum]
		if len(items) == 0 {
			log.Add(models.Warning{
				Book:   bookID,
				Page:   row.PageNum,
				Code:   models.WarnEmptyMatchup,
				Detail: "no matchup items authored for this page",
			})
		}
		return models.MatchupPage{
			Title:        row.Title,
			Description:  row.Description,
			Items:        items,
			Columns:      parseColumns(row.Columns),
			AnswerKeyURL: row.AnswerKeyURL,
			Action:       parseAction(row),
		}, true

	case "text":
		// Text pages carry no title or items; the description column is
		// the whole page content.
		return models.TextPage{
			Content:      row.Description,
			AnswerKeyURL: row.AnswerKeyURL,
		}, true

	case "teams":
		return models.TeamsPage{
			Title:        row.Title,
			Description:  row.Description,
			AnswerKeyURL: row.AnswerKeyURL,
			Action:       parseAction(row),
		}, true

	default:
		log.Add(models.Warning{
			Book:   bookID,
			Page:   row.PageNum,
			Code:   models.WarnUnknownPageType,
			Detail: fmt.Sprintf("unknown page type %q", row.Type),
		})
		return nil, false
	}
}

// parseColumns parses the column-count cell, defaulting to a single column
// when the cell is blank, non-numeric, or not positive.
func parseColumns(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseAction builds the optional action decoration. A page gets one only
// when the note content is non-blank after trimming.
func parseAction(row models.PageRow) *models.ActionContent {
	content := strings.TrimSpace(row.ActionNote)
	if content == "" {
		return nil
	}

	rotation, err := strconv.Atoi(strings.TrimSpace(row.ActionRotation))
	if err != nil {
		rotation = 0
	}

	position := models.PositionRight
	if strings.ToLower(strings.TrimSpace(row.ActionPosition)) == "left" {
		position = models.PositionLeft
	}

	icon := strings.TrimSpace(row.ActionIcon)
	if icon == "" {
		icon = models.DefaultActionIcon
	}

	return &models.ActionContent{
		Content:  content,
		Position: position,
		Rotation: rotation,
		Icon:     icon,
	}
}
