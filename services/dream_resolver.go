package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/Rowan7401/dream-team/models"
)

// Outcomes of a successful submission.
const (
	OutcomeCreated  = "created"
	OutcomeCosigned = "cosigned"
)

// Validation failures. All are rejected before any store write.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrBlankTitle       = errors.New("blank title")
	ErrBlankPicks       = errors.New("blank picks")
	ErrDuplicatePicks   = errors.New("duplicate picks")
)

// Identity is the authenticated caller, supplied explicitly by the
// HTTP layer. A zero UserID means the request is anonymous.
type Identity struct {
	UserID uint32
}

// ProfileDirectory resolves an account's display name. Accounts that
// vanished fall back to "Anonymous" at submission time.
type ProfileDirectory interface {
	DisplayName(userID uint32) (string, bool, error)
}

type SubmitResult struct {
	Outcome  string
	RecordID string
}

// DreamResolver implements the create-or-co-sign flow: a submission
// whose normalized pick set already exists attaches the caller as a
// co-signer instead of creating a duplicate record.
//
// The check-then-write sequence is not atomic: two concurrent
// submissions of the same pick set can both miss each other's create.
// Closing that race needs a store-side uniqueness constraint on the
// sorted-pick key, not client-side locking.
type DreamResolver struct {
	Store    DreamStore
	Finder   EquivalentFinder
	Profiles ProfileDirectory
	Now      func() time.Time
}

func NewDreamResolver(store DreamStore, profiles ProfileDirectory) *DreamResolver {
	return &DreamResolver{
		Store:    store,
		Finder:   ScanFinder{Store: store},
		Profiles: profiles,
		Now:      time.Now,
	}
}

var (
	nonWordRunes = regexp.MustCompile(`[^\w\s]+`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Normalize produces the comparison form of a pick or title: trimmed,
// lowercased, punctuation stripped, inner whitespace collapsed.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ToLower(text)
	text = nonWordRunes.ReplaceAllString(text, "")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// TitleCase capitalizes the first letter of each word. Applied to
// already-normalized text to produce the stored display form;
// equivalence is always judged on the lowercase form.
func TitleCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// PickKey is the order-independent equivalence key for three picks:
// the sorted tuple of their normalized forms.
func PickKey(a, b, c string) [3]string {
	key := [3]string{Normalize(a), Normalize(b), Normalize(c)}
	sort.Strings(key[:])
	return key
}

// SubmitTeam validates a prospective team and either registers a new
// record or co-signs the existing equivalent one. Validation order is
// fixed: authentication, blank title, blank picks, duplicate picks;
// the first failure wins and nothing is written. On success exactly
// one store write happens.
func (r *DreamResolver) SubmitTeam(title, pick1, pick2, pick3, category, customCategory string, user Identity) (*SubmitResult, error) {
	if user.UserID == 0 {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrBlankTitle
	}
	n1, n2, n3 := Normalize(pick1), Normalize(pick2), Normalize(pick3)
	if n1 == "" || n2 == "" || n3 == "" {
		return nil, ErrBlankPicks
	}
	if n1 == n2 || n1 == n3 || n2 == n3 {
		return nil, ErrDuplicatePicks
	}

	name, found, err := r.Profiles.DisplayName(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !found || name == "" {
		name = "Anonymous"
	}

	effectiveCategory := category
	if category == models.CategoryOther && strings.TrimSpace(customCategory) != "" {
		effectiveCategory = strings.TrimSpace(customCategory)
	}

	match, err := r.Finder.FindEquivalent(PickKey(pick1, pick2, pick3))
	if err != nil {
		return nil, err
	}

	if match != nil {
		// The author re-submitting their own team is a silent no-op,
		// just like a repeat co-sign: cosigners never carries the
		// author's own name.
		if name == match.AuthorName {
			return &SubmitResult{Outcome: OutcomeCosigned, RecordID: match.ID}, nil
		}
		for _, existing := range match.Cosigners {
			if existing == name {
				// Re-submitting an equivalent team is a silent no-op.
				return &SubmitResult{Outcome: OutcomeCosigned, RecordID: match.ID}, nil
			}
		}
		cosigners := append(append([]string{}, match.Cosigners...), name)
		if err := r.Store.UpdateFields(match.ID, map[string]interface{}{"cosigners": cosigners}); err != nil {
			return nil, err
		}
		return &SubmitResult{Outcome: OutcomeCosigned, RecordID: match.ID}, nil
	}

	team := models.DreamTeam{
		Title:       TitleCase(Normalize(title)),
		Picks:       [3]string{TitleCase(n1), TitleCase(n2), TitleCase(n3)},
		Category:    effectiveCategory,
		CategoryKey: strings.ToLower(effectiveCategory),
		AuthorID:    user.UserID,
		AuthorName:  name,
		Cosigners:   []string{},
		CreatedAt:   r.Now(),
	}
	id, err := r.Store.Create(team)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Outcome: OutcomeCreated, RecordID: id}, nil
}
