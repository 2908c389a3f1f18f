package service

import (
	"context"
	"testing"
	"time"

	"makotools/internal/model"
	"makotools/pkg/logger"
)

// stubUserService serves a fixed favorite list and counts lookups. The other
// methods exist only to satisfy the interface.
type stubUserService struct {
	favorites      []int64
	favoritesCalls int
}

func (s *stubUserService) Favorites(ctx context.Context, userID int64) ([]int64, error) {
	s.favoritesCalls++
	return s.favorites, nil
}

func (s *stubUserService) Register(context.Context, string, string, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) Login(context.Context, string, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) LoginWithIdentity(context.Context, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) GetByID(context.Context, int64) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) GetByUsername(context.Context, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) GetByToken(context.Context, string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) UpdateFavorites(context.Context, int64, []int64) error {
	return nil
}

func (s *stubUserService) UsernameAvailable(context.Context, string) (bool, error) {
	return false, nil
}

func (s *stubUserService) EmailAvailable(context.Context, string) (bool, error) {
	return false, nil
}

func (s *stubUserService) SendUsernameReminder(context.Context, string) error {
	return nil
}

func scoutAt(id int64, start time.Time, characterIDs ...int64) model.Campaign {
	return model.Campaign{
		ID:           id,
		Category:     model.CategoryScout,
		Start:        start,
		End:          start.Add(7 * 24 * time.Hour),
		CharacterIDs: model.IDList(characterIDs),
	}
}

func TestPairFavoritesOrderAndFanOut(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	a := scoutAt(1, now.Add(24*time.Hour), 10, 20)
	b := scoutAt(2, now.Add(48*time.Hour), 20)

	pairs := PairFavorites([]model.Campaign{a, b}, []int64{20, 10})

	// Favorite-list order first, then campaign order within one favorite.
	want := []struct {
		campaignID  int64
		characterID int64
	}{
		{1, 20},
		{2, 20},
		{1, 10},
	}
	if len(pairs) != len(want) {
		t.Fatalf("len(pairs) = %d, want %d", len(pairs), len(want))
	}
	for i, w := range want {
		if pairs[i].Campaign.ID != w.campaignID || pairs[i].CharacterID != w.characterID {
			t.Errorf("pairs[%d] = (campaign %d, character %d), want (%d, %d)",
				i, pairs[i].Campaign.ID, pairs[i].CharacterID, w.campaignID, w.characterID)
		}
	}
}

func TestPairFavoritesIgnoresUnrelatedCampaigns(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	a := scoutAt(1, now, 10)

	pairs := PairFavorites([]model.Campaign{a}, []int64{99})
	if len(pairs) != 0 {
		t.Fatalf("pairs = %+v, want empty", pairs)
	}
}

func TestRankUpcomingSortsByStart(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	late := scoutAt(1, now.Add(72*time.Hour), 10)
	soon := scoutAt(2, now.Add(24*time.Hour), 10)

	entries := RankUpcoming([]Entry{
		{Campaign: late, CharacterID: 10},
		{Campaign: soon, CharacterID: 10},
	}, 6, now)

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Campaign.ID != 2 || entries[1].Campaign.ID != 1 {
		t.Fatalf("order = [%d, %d], want [2, 1]", entries[0].Campaign.ID, entries[1].Campaign.ID)
	}
}

func TestRankUpcomingDropsStarted(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	started := scoutAt(1, now.Add(-time.Hour), 10)
	upcoming := scoutAt(2, now.Add(time.Hour), 10)

	entries := RankUpcoming([]Entry{
		{Campaign: started, CharacterID: 10},
		{Campaign: upcoming, CharacterID: 10},
	}, 6, now)

	if len(entries) != 1 || entries[0].Campaign.ID != 2 {
		t.Fatalf("entries = %+v, want only the upcoming campaign", entries)
	}
}

func TestRankUpcomingStartingExactlyNowIsDropped(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	atNow := scoutAt(1, now, 10)

	entries := RankUpcoming([]Entry{{Campaign: atNow, CharacterID: 10}}, 6, now)
	if len(entries) != 0 {
		t.Fatalf("entries = %+v, want empty", entries)
	}
}

func TestRankUpcomingAppliesLimit(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	var pairs []Entry
	for i := int64(1); i <= 10; i++ {
		pairs = append(pairs, Entry{
			Campaign:    scoutAt(i, now.Add(time.Duration(i)*time.Hour), 10),
			CharacterID: 10,
		})
	}

	entries := RankUpcoming(pairs, 3, now)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Campaign.ID != int64(i+1) {
			t.Errorf("entries[%d].Campaign.ID = %d, want %d", i, e.Campaign.ID, i+1)
		}
	}
}

func TestRankUpcomingCollapsesToFirstFavorite(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	shared := scoutAt(1, now.Add(time.Hour), 10, 20)

	// The same campaign paired through two favorites keeps only the first
	// pairing after ranking.
	pairs := PairFavorites([]model.Campaign{shared}, []int64{20, 10})
	entries := RankUpcoming(pairs, 6, now)

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (one slot per pair)", len(entries))
	}
	for i, e := range entries {
		if e.CharacterID != 20 {
			t.Errorf("entries[%d].CharacterID = %d, want 20 (first pairing wins)", i, e.CharacterID)
		}
	}
}

func TestRankUpcomingIdempotentForSameNow(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	pairs := []Entry{
		{Campaign: scoutAt(1, now.Add(2*time.Hour), 10), CharacterID: 10},
		{Campaign: scoutAt(2, now.Add(time.Hour), 20), CharacterID: 20},
	}

	first := RankUpcoming(pairs, 6, now)
	second := RankUpcoming(pairs, 6, now)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Campaign.Same(second[i].Campaign) || first[i].CharacterID != second[i].CharacterID {
			t.Errorf("entry %d differs between identical passes", i)
		}
	}
}

func TestForUserWithoutFavoritesShortCircuits(t *testing.T) {
	users := &stubUserService{}
	// A nil campaign service panics if the ranking path is reached, so the
	// short-circuit must return before any campaign fetch.
	svc := NewRecommendationService(nil, users, logger.NewLogger("error"))

	recs, err := svc.ForUser(context.Background(), 1, DefaultRecommendationLimit, time.Now())
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if recs.State != StateNoFavorites {
		t.Errorf("State = %q, want %q", recs.State, StateNoFavorites)
	}
	if len(recs.Entries) != 0 {
		t.Errorf("Entries = %+v, want empty", recs.Entries)
	}
	if users.favoritesCalls != 1 {
		t.Errorf("favorites lookups = %d, want 1", users.favoritesCalls)
	}
}

func TestRankUpcomingStableForEqualStarts(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)
	a := scoutAt(1, start, 10)
	b := model.Campaign{ID: 2, Category: model.CategorySong, Start: start, End: start.Add(time.Hour), CharacterIDs: model.IDList{10}}

	entries := RankUpcoming([]Entry{
		{Campaign: a, CharacterID: 10},
		{Campaign: b, CharacterID: 10},
	}, 6, now)

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Campaign.ID != 1 || entries[1].Campaign.ID != 2 {
		t.Fatalf("equal starts reordered: [%d, %d], want [1, 2]", entries[0].Campaign.ID, entries[1].Campaign.ID)
	}
}
