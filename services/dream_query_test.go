package services

import (
	"testing"

	"github.com/Rowan7401/dream-team/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryTestStore() *fakeStore {
	return &fakeStore{teams: []models.DreamTeam{
		{
			ID: "dreams:1", Title: "Best Rodents", CategoryKey: "animals",
			AuthorName: "userx", Cosigners: []string{"usery", "userz"},
		},
		{
			ID: "dreams:2", Title: "Sports Legends", CategoryKey: "sports",
			AuthorName: "usery", Cosigners: []string{},
		},
		{
			ID: "dreams:3", Title: "More Rodents", CategoryKey: "animals",
			AuthorName: "userx", Cosigners: []string{"usery"},
		},
	}}
}

func TestDreamsByTitle(t *testing.T) {
	store := queryTestStore()

	teams, err := DreamsByTitle(store, "rodents")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "dreams:1", teams[0].ID)
	assert.Equal(t, "dreams:3", teams[1].ID)

	teams, err = DreamsByTitle(store, "LEGENDS")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "dreams:2", teams[0].ID)
}

func TestDreamsByCategory(t *testing.T) {
	store := queryTestStore()

	teams, err := DreamsByCategory(store, "Animals")
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	teams, err = DreamsByCategory(store, "food")
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestDreamsByCategoryMostPopular(t *testing.T) {
	store := queryTestStore()

	teams, err := DreamsByCategory(store, models.CategoryMostPopular)
	require.NoError(t, err)
	// Only co-signed records, most co-signed first.
	require.Len(t, teams, 2)
	assert.Equal(t, "dreams:1", teams[0].ID)
	assert.Equal(t, "dreams:3", teams[1].ID)
}

func TestTeamCounts(t *testing.T) {
	store := queryTestStore()

	authored, cosigned, err := TeamCounts(store, "userx")
	require.NoError(t, err)
	assert.Equal(t, 2, authored)
	assert.Equal(t, 0, cosigned)

	authored, cosigned, err = TeamCounts(store, "usery")
	require.NoError(t, err)
	assert.Equal(t, 1, authored)
	assert.Equal(t, 2, cosigned)
}
