package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Rowan7401/dream-team/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	teams  []models.DreamTeam
	nextID int
	writes int
	fail   bool
}

func (s *fakeStore) FetchAll() ([]models.DreamTeam, error) {
	if s.fail {
		return nil, errors.New("store down")
	}
	out := make([]models.DreamTeam, len(s.teams))
	copy(out, s.teams)
	return out, nil
}

func (s *fakeStore) FetchByID(id string) (*models.DreamTeam, error) {
	if s.fail {
		return nil, errors.New("store down")
	}
	for i := range s.teams {
		if s.teams[i].ID == id {
			team := s.teams[i]
			return &team, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Create(team models.DreamTeam) (string, error) {
	if s.fail {
		return "", errors.New("store down")
	}
	s.nextID++
	team.ID = fmt.Sprintf("dreams:%d", s.nextID)
	s.teams = append(s.teams, team)
	s.writes++
	return team.ID, nil
}

func (s *fakeStore) UpdateFields(id string, fields map[string]interface{}) error {
	if s.fail {
		return errors.New("store down")
	}
	for i := range s.teams {
		if s.teams[i].ID == id {
			if cosigners, ok := fields["cosigners"].([]string); ok {
				s.teams[i].Cosigners = cosigners
			}
			s.writes++
			return nil
		}
	}
	return errors.New("no such record")
}

type fakeProfiles map[uint32]string

func (p fakeProfiles) DisplayName(userID uint32) (string, bool, error) {
	name, ok := p[userID]
	return name, ok, nil
}

func newTestResolver(store *fakeStore, profiles fakeProfiles) *DreamResolver {
	r := NewDreamResolver(store, profiles)
	r.Now = func() time.Time { return time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "rat", Normalize("  Rat  "))
	assert.Equal(t, "rat", Normalize("R.a.t!"))
	assert.Equal(t, "the great mole", Normalize("The   GREAT\tMole"))
	assert.Equal(t, "", Normalize("!!!***"))
	assert.Equal(t, "", Normalize("   "))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "The Great Mole", TitleCase("the great mole"))
	assert.Equal(t, "Rat", TitleCase("rat"))
	assert.Equal(t, "", TitleCase(""))
}

func TestPickKeyOrderIndependent(t *testing.T) {
	assert.Equal(t, PickKey("Rat", "Mole", "Muskrat"), PickKey("muskrat", "rat!", " mole "))
}

func TestSubmitTeamRequiresAuth(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{})

	_, err := resolver.SubmitTeam("T", "A", "B", "C", models.CategorySports, "", Identity{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, store.writes)
}

func TestSubmitTeamBlankTitle(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{1: "rowan"})

	_, err := resolver.SubmitTeam("   ", "A", "B", "C", models.CategorySports, "", Identity{UserID: 1})
	assert.ErrorIs(t, err, ErrBlankTitle)
	assert.Zero(t, store.writes)
}

func TestSubmitTeamBlankPicks(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{1: "rowan"})

	// "!!!" strips to nothing, so it counts as blank.
	_, err := resolver.SubmitTeam("T", "A", "!!!", "C", models.CategorySports, "", Identity{UserID: 1})
	assert.ErrorIs(t, err, ErrBlankPicks)
	assert.Zero(t, store.writes)
}

func TestSubmitTeamDuplicatePicks(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{1: "rowan"})

	_, err := resolver.SubmitTeam("T", "Rat", "rat", "Mole", models.CategorySports, "", Identity{UserID: 1})
	assert.ErrorIs(t, err, ErrDuplicatePicks)
	assert.Zero(t, store.writes)
}

func TestSubmitTeamValidationOrder(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{1: "rowan"})

	// Blank title wins over blank picks: first failure in the fixed
	// order is the one reported.
	_, err := resolver.SubmitTeam("", "", "", "", models.CategorySports, "", Identity{UserID: 1})
	assert.ErrorIs(t, err, ErrBlankTitle)

	_, err = resolver.SubmitTeam("T", "", "Rat", "Rat", models.CategorySports, "", Identity{UserID: 1})
	assert.ErrorIs(t, err, ErrBlankPicks)
}

func TestSubmitTeamCreates(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{7: "rowan"})

	result, err := resolver.SubmitTeam("rodents of note", "rat", "mole", "muskrat", models.CategoryOther, "Rodents", Identity{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, result.Outcome)
	assert.Equal(t, "dreams:1", result.RecordID)

	require.Len(t, store.teams, 1)
	team := store.teams[0]
	assert.Equal(t, "Rodents Of Note", team.Title)
	assert.Equal(t, [3]string{"Rat", "Mole", "Muskrat"}, team.Picks)
	assert.Equal(t, "Rodents", team.Category)
	assert.Equal(t, "rodents", team.CategoryKey)
	assert.Equal(t, uint32(7), team.AuthorID)
	assert.Equal(t, "rowan", team.AuthorName)
	assert.Empty(t, team.Cosigners)
	assert.NotNil(t, team.Cosigners)
	assert.Equal(t, 1, store.writes)
}

func TestSubmitTeamCategoryFallsBackWithoutCustom(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{7: "rowan"})

	_, err := resolver.SubmitTeam("T", "A", "B", "C", models.CategoryOther, "   ", Identity{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, store.teams[0].Category)
	assert.Equal(t, "other", store.teams[0].CategoryKey)
}

func TestSubmitTeamCosignsEquivalent(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{1: "userx", 2: "usery"})

	first, err := resolver.SubmitTeam("Rodents", "Rat", "Mole", "Muskrat", models.CategoryOther, "Rodents", Identity{UserID: 1})
	require.NoError(t, err)
	require.Equal(t, OutcomeCreated, first.Outcome)

	// Different title and category, same picks reordered: co-sign, and
	// the original record stays untouched apart from the cosigner list.
	second, err := resolver.SubmitTeam("Rodents2", "Muskrat", "Rat", "Mole", models.CategorySports, "", Identity{UserID: 2})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCosigned, second.Outcome)
	assert.Equal(t, first.RecordID, second.RecordID)

	require.Len(t, store.teams, 1)
	team := store.teams[0]
	assert.Equal(t, "Rodents", team.Title)
	assert.Equal(t, "Rodents", team.Category)
	assert.Equal(t, "userx", team.AuthorName)
	assert.Equal(t, []string{"usery"}, team.Cosigners)
	assert.Equal(t, 2, store.writes)
}

func TestSubmitTeamCosignIdempotent(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{1: "userx", 2: "usery"})

	_, err := resolver.SubmitTeam("Rodents", "Rat", "Mole", "Muskrat", models.CategorySports, "", Identity{UserID: 1})
	require.NoError(t, err)
	_, err = resolver.SubmitTeam("Again", "Mole", "Muskrat", "Rat", models.CategorySports, "", Identity{UserID: 2})
	require.NoError(t, err)
	writesAfterCosign := store.writes

	result, err := resolver.SubmitTeam("Once More", "rat", "mole", "muskrat", models.CategorySports, "", Identity{UserID: 2})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCosigned, result.Outcome)
	assert.Equal(t, []string{"usery"}, store.teams[0].Cosigners)
	assert.Equal(t, writesAfterCosign, store.writes, "repeat co-sign must not write")
}

func TestSubmitTeamAuthorResubmitIsNoOp(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{1: "userx"})

	first, err := resolver.SubmitTeam("Rodents", "Rat", "Mole", "Muskrat", models.CategorySports, "", Identity{UserID: 1})
	require.NoError(t, err)
	writesAfterCreate := store.writes

	// The author re-submitting their own picks reordered co-signs
	// nothing: their name never lands in the cosigner list.
	result, err := resolver.SubmitTeam("Rodents Again", "Muskrat", "Rat", "Mole", models.CategorySports, "", Identity{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCosigned, result.Outcome)
	assert.Equal(t, first.RecordID, result.RecordID)
	assert.Empty(t, store.teams[0].Cosigners)
	assert.Equal(t, writesAfterCreate, store.writes, "author resubmit must not write")
}

func TestSubmitTeamAnonymousFallback(t *testing.T) {
	store := &fakeStore{}
	resolver := newTestResolver(store, fakeProfiles{})

	_, err := resolver.SubmitTeam("T", "A", "B", "C", models.CategorySports, "", Identity{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", store.teams[0].AuthorName)
}

func TestSubmitTeamStoreFailure(t *testing.T) {
	store := &fakeStore{fail: true}
	resolver := newTestResolver(store, fakeProfiles{1: "rowan"})

	_, err := resolver.SubmitTeam("T", "A", "B", "C", models.CategorySports, "", Identity{UserID: 1})
	assert.Error(t, err)
	assert.Zero(t, store.writes)
}

func TestScanFinderPicksFirstMatch(t *testing.T) {
	store := &fakeStore{teams: []models.DreamTeam{
		{ID: "dreams:a", Picks: [3]string{"Cat", "Dog", "Bird"}},
		{ID: "dreams:b", Picks: [3]string{"Rat", "Mole", "Muskrat"}},
		{ID: "dreams:c", Picks: [3]string{"Mole", "Muskrat", "Rat"}},
	}}
	finder := ScanFinder{Store: store}

	match, err := finder.FindEquivalent(PickKey("muskrat", "mole", "rat"))
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "dreams:b", match.ID)

	match, err = finder.FindEquivalent(PickKey("x", "y", "z"))
	require.NoError(t, err)
	assert.Nil(t, match)
}
