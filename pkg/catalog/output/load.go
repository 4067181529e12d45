package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/triviaforge/triviaforge/pkg/catalog/models"
)

// Load reads a persisted catalog artifact and rebuilds the registry the
// query side serves from. The artifact is schema-validated before
// decoding; generators expand back into the exact clue sequences the
// compiler inferred.
func Load(path string) (*models.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode validates and decodes artifact bytes into a registry.
func Decode(data []byte) (*models.Registry, error) {
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("invalid catalog artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a.Registry()
}

func validate(data []byte) error {
	sch, err := jsonschema.CompileString("catalog.schema.json", artifactSchema)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return sch.Validate(v)
}

// Registry expands the artifact back into the in-memory registry.
func (a *Artifact) Registry() (*models.Registry, error) {
	reg := &models.Registry{
		DefaultBook: a.DefaultBook,
		Books:       make(map[string]*models.BookCatalog, len(a.Books)),
	}
	for id, bj := range a.Books {
		book := &models.BookCatalog{
			ID:                id,
			TotalPages:        bj.TotalPages,
			AnswerKeyTemplate: bj.AnswerKeyTemplate,
			Pages:             make(map[int]models.Page, len(bj.Pages)),
		}
		for _, pj := range bj.Pages {
			page, err := decodePage(pj)
			if err != nil {
				return nil, fmt.Errorf("book %q page %d: %w", id, pj.Num, err)
			}
			book.Pages[pj.Num] = page
		}
		reg.Books[id] = book
	}
	return reg, nil
}

func decodePage(pj pageJSON) (models.Page, error) {
	switch models.PageType(pj.Type) {
	case models.PageList:
		items, err := expandClueItems(pj.Items)
		if err != nil {
			return nil, err
		}
		return models.ListPage{
			Title:        pj.Title,
			Description:  pj.Description,
			Items:        items,
			Columns:      pj.Columns,
			AnswerKeyURL: pj.AnswerKeyURL,
			Action:       decodeAction(pj.Action),
		}, nil
	case models.PageMatchup:
		items := make([]models.MatchupItem, 0, len(pj.MatchupItems))
		for _, mj := range pj.MatchupItems {
			items = append(items, models.MatchupItem{CenterText: mj.CenterText, Context: mj.Context})
		}
		return models.MatchupPage{
			Title:        pj.Title,
			Description:  pj.Description,
			Items:        items,
			Columns:      pj.Columns,
			AnswerKeyURL: pj.AnswerKeyURL,
			Action:       decodeAction(pj.Action),
		}, nil
	case models.PageText:
		return models.TextPage{
			Content:      pj.Content,
			AnswerKeyURL: pj.AnswerKeyURL,
		}, nil
	case models.PageTeams:
		return models.TeamsPage{
			Title:        pj.Title,
			Description:  pj.Description,
			AnswerKeyURL: pj.AnswerKeyURL,
			Action:       decodeAction(pj.Action),
		}, nil
	default:
		return nil, fmt.Errorf("unknown page type %q", pj.Type)
	}
}

// maxGeneratorCount bounds generator expansion, mirroring the schema's
// maximum, so a hand-edited artifact cannot demand an arbitrary allocation.
const maxGeneratorCount = 1000

// expandClueItems reverses the serializer's closed-form choice: generators
// regenerate their sequence, literals decode element by element.
func expandClueItems(ci *clueItems) ([]models.ListItem, error) {
	if ci == nil {
		return nil, nil
	}
	if ci.Count < 0 || ci.Count > maxGeneratorCount {
		return nil, fmt.Errorf("generator count %d out of range [0, %d]", ci.Count, maxGeneratorCount)
	}
	switch ci.Generator {
	case generatorYears:
		items := make([]models.ListItem, ci.Count)
		for i := range items {
			items[i] = models.ListItem{Clue: models.NumberClue(ci.Start - i)}
		}
		return items, nil
	case generatorRanks:
		items := make([]models.ListItem, ci.Count)
		for i := range items {
			items[i] = models.ListItem{Clue: models.TextClue("#" + strconv.Itoa(i+1))}
		}
		return items, nil
	case "":
		items := make([]models.ListItem, 0, len(ci.Literal))
		for _, cj := range ci.Literal {
			if cj.Number != nil {
				items = append(items, models.ListItem{Clue: models.NumberClue(*cj.Number)})
				continue
			}
			text := ""
			if cj.Text != nil {
				text = *cj.Text
			}
			items = append(items, models.ListItem{Clue: models.TextClue(text)})
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unknown items generator %q", ci.Generator)
	}
}

func decodeAction(aj *actionJSON) *models.ActionContent {
	if aj == nil {
		return nil
	}
	return &models.ActionContent{
		Content:  aj.Content,
		Position: models.ActionPosition(aj.Position),
		Rotation: aj.Rotation,
		Icon:     aj.Icon,
	}
}
