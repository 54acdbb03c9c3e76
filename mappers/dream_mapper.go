package mappers

import (
	"fmt"
	"time"

	"github.com/Rowan7401/dream-team/dto"
	"github.com/Rowan7401/dream-team/models"
)

// MapDocToDreamTeam converts a raw store document into the typed
// record. Missing cosigners become an empty list, never nil.
func MapDocToDreamTeam(doc map[string]interface{}) models.DreamTeam {
	team := models.DreamTeam{
		ID:          asString(doc["id"]),
		Title:       asString(doc["title"]),
		Category:    asString(doc["category"]),
		CategoryKey: asString(doc["category_key"]),
		AuthorName:  asString(doc["author_name"]),
		Cosigners:   []string{},
	}
	if picks, ok := doc["picks"].([]interface{}); ok {
		for i := 0; i < len(picks) && i < 3; i++ {
			team.Picks[i] = asString(picks[i])
		}
	}
	// JSON numbers decode as float64.
	if n, ok := doc["author_id"].(float64); ok {
		team.AuthorID = uint32(n)
	}
	if raw, ok := doc["cosigners"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				team.Cosigners = append(team.Cosigners, s)
			}
		}
	}
	if ts, err := time.Parse(time.RFC3339, asString(doc["created_at"])); err == nil {
		team.CreatedAt = ts
	}
	return team
}

// MapDocsToDreamTeams decodes a whole-collection payload. A nil payload
// is an empty collection.
func MapDocsToDreamTeams(raw interface{}) ([]models.DreamTeam, error) {
	if raw == nil {
		return []models.DreamTeam{}, nil
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected collection payload %T", raw)
	}
	teams := make([]models.DreamTeam, 0, len(arr))
	for _, item := range arr {
		doc, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		teams = append(teams, MapDocToDreamTeam(doc))
	}
	return teams, nil
}

// MapQueryToDreamTeams unwraps a query response, which arrives as a
// list of {result, status, time} statement results.
func MapQueryToDreamTeams(raw interface{}) ([]models.DreamTeam, error) {
	stmts, ok := raw.([]interface{})
	if !ok || len(stmts) == 0 {
		return []models.DreamTeam{}, nil
	}
	stmt, ok := stmts[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected query payload %T", stmts[0])
	}
	return MapDocsToDreamTeams(stmt["result"])
}

// MapDreamTeamToDoc flattens a record into store fields. The ID is
// omitted: the store assigns it on creation.
func MapDreamTeamToDoc(team models.DreamTeam) map[string]interface{} {
	return map[string]interface{}{
		"title":        team.Title,
		"picks":        []string{team.Picks[0], team.Picks[1], team.Picks[2]},
		"category":     team.Category,
		"category_key": team.CategoryKey,
		"author_id":    team.AuthorID,
		"author_name":  team.AuthorName,
		"cosigners":    team.Cosigners,
		"created_at":   team.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// DocID pulls the record id out of a create response, which may be a
// single document or a one-element list.
func DocID(raw interface{}) string {
	switch v := raw.(type) {
	case []interface{}:
		if len(v) > 0 {
			return DocID(v[0])
		}
	case map[string]interface{}:
		return asString(v["id"])
	}
	return ""
}

func MapModelToItemResp(team models.DreamTeam) dto.DreamItemResp {
	return dto.DreamItemResp{
		ID:          team.ID,
		Title:       team.Title,
		Picks:       []string{team.Picks[0], team.Picks[1], team.Picks[2]},
		Category:    team.Category,
		CategoryKey: team.CategoryKey,
		AuthorID:    team.AuthorID,
		AuthorName:  team.AuthorName,
		Cosigners:   team.Cosigners,
		CosignCount: len(team.Cosigners),
		CreatedAt:   team.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func MapModelsToItemResps(teams []models.DreamTeam) []dto.DreamItemResp {
	resps := make([]dto.DreamItemResp, 0, len(teams))
	for _, team := range teams {
		resps = append(resps, MapModelToItemResp(team))
	}
	return resps
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
