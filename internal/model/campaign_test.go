package model

import (
	"testing"
	"time"
)

func TestEventCampaign(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	e := Event{
		EventID:      42,
		Name:         LocalizedText{"Starlight Parade", "スターライトパレード"},
		Type:         "song",
		StartDate:    start,
		EndDate:      end,
		BannerID:     7,
		CharacterIDs: IDList{1, 2, 3},
	}

	c := e.Campaign()
	if c.ID != 42 || c.Category != CategorySong {
		t.Fatalf("identity = (%d, %q), want (42, song)", c.ID, c.Category)
	}
	if c.Name != "Starlight Parade" {
		t.Errorf("Name = %q, want first localization", c.Name)
	}
	if !c.Start.Equal(start) || !c.End.Equal(end) {
		t.Errorf("range = [%v, %v], want source dates unchanged", c.Start, c.End)
	}
	if c.BannerID != 7 {
		t.Errorf("BannerID = %d, want 7", c.BannerID)
	}
}

func TestScoutCampaign(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	s := Scout{
		GachaID:      17,
		Name:         LocalizedText{"Midnight Scout"},
		Type:         "feature scout",
		StartDate:    start,
		EndDate:      start.Add(7 * 24 * time.Hour),
		BannerID:     9,
		CharacterIDs: IDList{4},
	}

	c := s.Campaign()
	if c.ID != 17 || c.Category != CategoryFeatureScout {
		t.Fatalf("identity = (%d, %q), want (17, feature scout)", c.ID, c.Category)
	}
}

func TestBirthdayCampaignThisYear(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	ch := Character{CharacterID: 3, FirstName: LocalizedText{"Mao"}, BirthdayMonth: 6, BirthdayDay: 15, RenderID: 30}

	c := ch.BirthdayCampaign(now)
	wantStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !c.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", c.Start, wantStart)
	}
	if !c.End.Equal(wantStart.Add(BirthdayWindow)) {
		t.Errorf("End = %v, want start plus one day", c.End)
	}
	if c.Name != "Mao's Birthday" {
		t.Errorf("Name = %q, want \"Mao's Birthday\"", c.Name)
	}
	if c.CharacterID != 3 || c.BannerID != 30 {
		t.Errorf("linkage = (character %d, banner %d), want (3, 30)", c.CharacterID, c.BannerID)
	}
}

func TestBirthdayCampaignRollsToNextYear(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	ch := Character{CharacterID: 3, FirstName: LocalizedText{"Mao"}, BirthdayMonth: 6, BirthdayDay: 15}

	c := ch.BirthdayCampaign(now)
	wantStart := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	if !c.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want next year's occurrence %v", c.Start, wantStart)
	}
}

func TestBirthdayCampaignStillLiveToday(t *testing.T) {
	// Noon on the birthday itself: the window has not ended, so it must not
	// roll over to next year.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ch := Character{CharacterID: 3, BirthdayMonth: 6, BirthdayDay: 15}

	c := ch.BirthdayCampaign(now)
	if c.Start.Year() != 2025 {
		t.Errorf("Start year = %d, want 2025", c.Start.Year())
	}
	if !c.Live(now) {
		t.Errorf("campaign not live at noon on the birthday")
	}
}

func TestCampaignLive(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	c := Campaign{Start: start, End: start.Add(24 * time.Hour)}

	if !c.Live(start) {
		t.Errorf("Live(start) = false, want true")
	}
	if c.Live(start.Add(24 * time.Hour)) {
		t.Errorf("Live(end) = true, want false")
	}
	if c.Live(start.Add(-time.Second)) {
		t.Errorf("Live(before start) = true, want false")
	}
}

func TestCampaignFeatures(t *testing.T) {
	birthday := Campaign{Category: CategoryBirthday, CharacterID: 5}
	if !birthday.Features(5) || birthday.Features(6) {
		t.Errorf("birthday Features checks the owner")
	}

	scout := Campaign{Category: CategoryScout, CharacterIDs: IDList{1, 2}}
	if !scout.Features(2) || scout.Features(5) {
		t.Errorf("scout Features checks the featured list")
	}
}

func TestCampaignSame(t *testing.T) {
	a := Campaign{ID: 1, Category: CategorySong}
	b := Campaign{ID: 1, Category: CategoryScout}
	if a.Same(b) {
		t.Errorf("same ID across categories must not match")
	}
	if !a.Same(Campaign{ID: 1, Category: CategorySong}) {
		t.Errorf("identical identity must match")
	}
}

func TestLocalizedTextFirst(t *testing.T) {
	if got := (LocalizedText{"en", "ja"}).First(); got != "en" {
		t.Errorf("First() = %q, want %q", got, "en")
	}
	if got := (LocalizedText{}).First(); got != "" {
		t.Errorf("First() on empty = %q, want empty string", got)
	}
}
