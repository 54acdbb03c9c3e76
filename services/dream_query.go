package services

import (
	"sort"
	"strings"

	"github.com/Rowan7401/dream-team/models"
)

// The discovery queries are plain filters over the fetched collection.
// The store cannot express a case-insensitive substring match, so like
// the equivalence scan they run client-side.

// DreamsByTitle returns records whose title contains the query,
// case-insensitively.
func DreamsByTitle(store DreamStore, query string) ([]models.DreamTeam, error) {
	teams, err := store.FetchAll()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]models.DreamTeam, 0, len(teams))
	for _, team := range teams {
		if strings.Contains(strings.ToLower(team.Title), needle) {
			matched = append(matched, team)
		}
	}
	return matched, nil
}

// DreamsByCategory filters on the lowercase category key. The virtual
// "most popular" category instead returns every record with at least
// one co-signer, most co-signed first.
func DreamsByCategory(store DreamStore, categoryKey string) ([]models.DreamTeam, error) {
	teams, err := store.FetchAll()
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(strings.TrimSpace(categoryKey))

	if key == models.CategoryMostPopular {
		popular := make([]models.DreamTeam, 0, len(teams))
		for _, team := range teams {
			if len(team.Cosigners) > 0 {
				popular = append(popular, team)
			}
		}
		sort.SliceStable(popular, func(i, j int) bool {
			return len(popular[i].Cosigners) > len(popular[j].Cosigners)
		})
		return popular, nil
	}

	matched := make([]models.DreamTeam, 0, len(teams))
	for _, team := range teams {
		if team.CategoryKey == key {
			matched = append(matched, team)
		}
	}
	return matched, nil
}

// TeamCounts reports how many records a user authored and how many
// they co-signed, by display name.
func TeamCounts(store DreamStore, username string) (authored, cosigned int, err error) {
	teams, err := store.FetchAll()
	if err != nil {
		return 0, 0, err
	}
	for _, team := range teams {
		if team.AuthorName == username {
			authored++
		}
		for _, name := range team.Cosigners {
			if name == username {
				cosigned++
				break
			}
		}
	}
	return authored, cosigned, nil
}
