package service

import (
	"testing"
	"time"

	"makotools/internal/model"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func TestSelectShownAllLive(t *testing.T) {
	now := day(t, "2025-05-10")
	campaigns := []model.Campaign{
		{ID: 1, Category: model.CategorySong, Start: day(t, "2025-05-01"), End: day(t, "2025-05-20")},
		{ID: 2, Category: model.CategoryTour, Start: day(t, "2025-05-05"), End: day(t, "2025-05-15")},
	}

	shown, mode := SelectShown(campaigns, now)
	if mode != ModeCurrent {
		t.Fatalf("mode = %q, want %q", mode, ModeCurrent)
	}
	if len(shown) != 2 {
		t.Fatalf("len(shown) = %d, want 2", len(shown))
	}
}

func TestSelectShownDropsExpired(t *testing.T) {
	now := day(t, "2025-05-10")
	campaigns := []model.Campaign{
		{ID: 1, Category: model.CategorySong, Start: day(t, "2025-04-01"), End: day(t, "2025-04-10")},
		{ID: 2, Category: model.CategorySong, Start: day(t, "2025-05-01"), End: day(t, "2025-05-20")},
	}

	shown, mode := SelectShown(campaigns, now)
	if mode != ModeCurrent {
		t.Fatalf("mode = %q, want %q", mode, ModeCurrent)
	}
	if len(shown) != 1 || shown[0].ID != 2 {
		t.Fatalf("shown = %+v, want only id 2", shown)
	}
}

func TestSelectShownFallsBackToEarliestEndingUpcoming(t *testing.T) {
	now := day(t, "2025-05-10")
	campaigns := []model.Campaign{
		{ID: 1, Category: model.CategoryScout, Start: day(t, "2025-06-01"), End: day(t, "2025-06-20")},
		{ID: 2, Category: model.CategoryScout, Start: day(t, "2025-06-05"), End: day(t, "2025-06-10")},
	}

	shown, mode := SelectShown(campaigns, now)
	if mode != ModeNext {
		t.Fatalf("mode = %q, want %q", mode, ModeNext)
	}
	if len(shown) != 1 || shown[0].ID != 2 {
		t.Fatalf("shown = %+v, want only id 2 (earliest ending)", shown)
	}
}

func TestSelectShownLiveWinsOverUpcoming(t *testing.T) {
	now := day(t, "2025-05-10")
	campaigns := []model.Campaign{
		{ID: 1, Category: model.CategorySong, Start: day(t, "2025-05-01"), End: day(t, "2025-05-20")},
		{ID: 2, Category: model.CategorySong, Start: day(t, "2025-06-01"), End: day(t, "2025-06-10")},
	}

	shown, mode := SelectShown(campaigns, now)
	if mode != ModeCurrent {
		t.Fatalf("mode = %q, want %q", mode, ModeCurrent)
	}
	if len(shown) != 1 || shown[0].ID != 1 {
		t.Fatalf("shown = %+v, want only the live campaign", shown)
	}
}

func TestSelectShownEmpty(t *testing.T) {
	now := day(t, "2025-05-10")

	shown, mode := SelectShown(nil, now)
	if len(shown) != 0 {
		t.Fatalf("shown = %+v, want empty", shown)
	}
	if mode != ModeCurrent {
		t.Fatalf("mode = %q, want %q", mode, ModeCurrent)
	}
}

func TestSelectShownEverythingExpired(t *testing.T) {
	now := day(t, "2025-05-10")
	campaigns := []model.Campaign{
		{ID: 1, Category: model.CategorySong, Start: day(t, "2025-04-01"), End: day(t, "2025-04-10")},
	}

	shown, mode := SelectShown(campaigns, now)
	if len(shown) != 0 {
		t.Fatalf("shown = %+v, want empty", shown)
	}
	if mode != ModeCurrent {
		t.Fatalf("mode = %q, want %q", mode, ModeCurrent)
	}
}

func TestSelectShownBoundaryInstants(t *testing.T) {
	start := day(t, "2025-05-10")
	end := day(t, "2025-05-20")
	campaign := model.Campaign{ID: 1, Category: model.CategorySong, Start: start, End: end}

	// At the exact start the campaign is live.
	shown, mode := SelectShown([]model.Campaign{campaign}, start)
	if mode != ModeCurrent || len(shown) != 1 {
		t.Fatalf("at start: shown = %+v, mode = %q, want live", shown, mode)
	}

	// At the exact end it has expired.
	shown, _ = SelectShown([]model.Campaign{campaign}, end)
	if len(shown) != 0 {
		t.Fatalf("at end: shown = %+v, want empty", shown)
	}
}
