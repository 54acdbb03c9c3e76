package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rowan7401/dream-team/database"
	"github.com/Rowan7401/dream-team/mappers"
	"github.com/Rowan7401/dream-team/models"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"gorm.io/gorm"
)

// ErrStoreUnavailable wraps any document store failure so callers can
// report a single transient-error outcome.
var ErrStoreUnavailable = errors.New("document store unavailable")

const dreamCollection = "dreams"

// DreamStore is the boundary to the document collection holding dream
// team records. Records are created once and afterwards only mutated
// by partial field updates; they are never deleted.
type DreamStore interface {
	FetchAll() ([]models.DreamTeam, error)
	FetchByID(id string) (*models.DreamTeam, error)
	Create(team models.DreamTeam) (string, error)
	UpdateFields(id string, fields map[string]interface{}) error
}

// EquivalentFinder locates the record matching a normalized pick key.
// The scan strategy lives behind this interface so it can later be
// swapped for a store-side index on the sorted-pick key without
// touching the resolver.
type EquivalentFinder interface {
	FindEquivalent(key [3]string) (*models.DreamTeam, error)
}

// ScanFinder fetches the whole collection and compares keys
// client-side. The store cannot index a normalized, order-independent
// pick set, so every record is considered; the first match in returned
// order wins.
type ScanFinder struct {
	Store DreamStore
}

func (f ScanFinder) FindEquivalent(key [3]string) (*models.DreamTeam, error) {
	teams, err := f.Store.FetchAll()
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if PickKey(teams[i].Picks[0], teams[i].Picks[1], teams[i].Picks[2]) == key {
			return &teams[i], nil
		}
	}
	return nil, nil
}

// SurrealDreamStore persists dream team documents in SurrealDB via the
// shared database.SDB handle.
type SurrealDreamStore struct{}

func (SurrealDreamStore) FetchAll() ([]models.DreamTeam, error) {
	raw, err := database.SDB.Select(dreamCollection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	teams, err := mappers.MapDocsToDreamTeams(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return teams, nil
}

func (SurrealDreamStore) FetchByID(id string) (*models.DreamTeam, error) {
	raw, err := database.SDB.Select(id)
	if err != nil {
		if errors.Is(err, surrealdb.ErrNoRow) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	team := mappers.MapDocToDreamTeam(doc)
	return &team, nil
}

func (SurrealDreamStore) Create(team models.DreamTeam) (string, error) {
	raw, err := database.SDB.Create(dreamCollection, mappers.MapDreamTeamToDoc(team))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return mappers.DocID(raw), nil
}

func (SurrealDreamStore) UpdateFields(id string, fields map[string]interface{}) error {
	if _, err := database.SDB.Change(id, fields); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// FetchByAuthorID lists records authored by the given account. Unlike
// the equivalence scan this predicate is a plain field match, so it is
// pushed down to the store.
func (SurrealDreamStore) FetchByAuthorID(authorID uint32) ([]models.DreamTeam, error) {
	raw, err := database.SDB.Query(
		"SELECT * FROM dreams WHERE author_id = $author_id",
		map[string]interface{}{"author_id": authorID},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	teams, err := mappers.MapQueryToDreamTeams(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return teams, nil
}

// FetchByAuthorName lists records by the display name captured at
// creation time, which is what the per-user pages key on. The match is
// case-insensitive: usernames are stored lowercase but the "Anonymous"
// fallback is title-cased.
func (SurrealDreamStore) FetchByAuthorName(name string) ([]models.DreamTeam, error) {
	raw, err := database.SDB.Query(
		"SELECT * FROM dreams WHERE string::lowercase(author_name) = $author_name",
		map[string]interface{}{"author_name": strings.ToLower(name)},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	teams, err := mappers.MapQueryToDreamTeams(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return teams, nil
}

// GormProfileDirectory resolves display names from the accounts table.
type GormProfileDirectory struct{}

func (GormProfileDirectory) DisplayName(userID uint32) (string, bool, error) {
	var user models.User
	err := database.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return user.Username, true, nil
}
