package parser

import (
	"reflect"
	"testing"

	"github.com/triviaforge/triviaforge/pkg/catalog/models"
)

func TestGroupMatchupsPreservesOrderAndDropsUnattributable(t *testing.T) {
	rows := []models.MatchupRow{
		{PageNum: 2, CenterText: "a"},
		{PageNum: 1, CenterText: "b"},
		{PageNum: 2, CenterText: "c"},
		{PageNum: 0, CenterText: "x"},
	}

	byPage := GroupMatchups(rows)

	if len(byPage) != 2 {
		t.Fatalf("Expected 2 page groups, got %d", len(byPage))
	}
	if got := centers(byPage[1]); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("page 1: expected [b], got %v", got)
	}
	if got := centers(byPage[2]); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("page 2: expected [a c], got %v", got)
	}
	if _, ok := byPage[0]; ok {
		t.Error("page 0 should have been dropped")
	}
}

func TestGroupMatchupsKeepsContext(t *testing.T) {
	rows := []models.MatchupRow{
		{PageNum: 5, CenterText: "Super Bowl XLII", Context: "2008 season", Answer: "Giants"},
	}

	byPage := GroupMatchups(rows)

	want := models.MatchupItem{CenterText: "Super Bowl XLII", Context: "2008 season"}
	if len(byPage[5]) != 1 || byPage[5][0] != want {
		t.Errorf("Expected %+v, got %+v", want, byPage[5])
	}
}

func centers(items []models.MatchupItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.CenterText)
	}
	return out
}
