package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
)

// fallbackItemCount is how many empty clues an unparseable items note
// yields. The page still renders; the author fixes the note after seeing
// the warning.
const fallbackItemCount = 10

// maxItemCount bounds the declared item count. A printed page cannot hold
// more items than this, so anything larger is an authoring mistake.
const maxItemCount = 100

// Pattern checks run in a fixed order: years before ranks before the
// empty-clue fallback. A note somehow matching both cues resolves to the
// years interpretation.
var (
	itemCountRe = regexp.MustCompile(`^\s*(\d+)\s+items\b`)
	yearsRe     = regexp.MustCompile(`(?i)years\s+descending\s+from\s+(\d+)`)
	ranksRe     = regexp.MustCompile(`(?i)rank\s+numbers?`)
)

// InferClues parses a free-text items note into an ordered clue list.
//
// The note declares its item count with an "<N> items" prefix, then
// describes the clue pattern: "years descending from <Y>" yields N numeric
// clues counting down from Y; "rank numbers" yields "#1".."#N". Any other
// wording, or a missing count prefix, falls back to empty text clues and
// records a pattern warning.
func InferClues(bookID string, pageNum int, note string, log *models.WarningLog) []models.ListItem {
	m := itemCountRe.FindStringSubmatch(note)
	if m == nil {
		log.Add(models.Warning{
			Book:   bookID,
			Page:   pageNum,
			Code:   models.WarnPattern,
			Detail: fmt.Sprintf("items note has no item count: %q", note),
		})
		return emptyClues(fallbackItemCount)
	}
	count, err := strconv.Atoi(m[1])
	if err != nil || count > maxItemCount {
		log.Add(models.Warning{
			Book:   bookID,
			Page:   pageNum,
			Code:   models.WarnPattern,
			Detail: fmt.Sprintf("item count out of range (max %d): %q", maxItemCount, note),
		})
		return emptyClues(fallbackItemCount)
	}

	if ym := yearsRe.FindStringSubmatch(note); ym != nil {
		start, _ := strconv.Atoi(ym[1])
		items := make([]models.ListItem, count)
		for i := range items {
			items[i] = models.ListItem{Clue: models.NumberClue(start - i)}
		}
		return items
	}

	if ranksRe.MatchString(note) {
		items := make([]models.ListItem, count)
		for i := range items {
			items[i] = models.ListItem{Clue: models.TextClue("#" + strconv.Itoa(i+1))}
		}
		return items
	}

	log.Add(models.Warning{
		Book:   bookID,
		Page:   pageNum,
		Code:   models.WarnPattern,
		Detail: fmt.Sprintf("unrecognized clue pattern: %q", note),
	})
	return emptyClues(count)
}

func emptyClues(n int) []models.ListItem {
	items := make([]models.ListItem, n)
	for i := range items {
		items[i] = models.ListItem{Clue: models.TextClue("")}
	}
	return items
}
