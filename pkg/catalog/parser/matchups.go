package parser

import "github.com/triviaforge/triviaforge/pkg/catalog/models"

// GroupMatchups groups matchup rows by page number, preserving sheet row
// order within each page. Rows whose page number is non-positive (blank or
// non-numeric cells parse to 0) cannot be attributed to a page and are
// dropped.
func GroupMatchups(rows []models.MatchupRow) map[int][]models.MatchupItem {
	byPage := make(map[int][]models.MatchupItem)
	for _, row := range rows {
		if row.PageNum <= 0 {
			continue
		}
		byPage[row.PageNum] = append(byPage[row.PageNum], models.MatchupItem{
			CenterText: row.CenterText,
			Context:    row.Context,
		})
	}
	return byPage
}
