package assets

import "testing"

func TestCampaignBanner(t *testing.T) {
	r := NewResolver("https://assets.example.com/")

	got := r.CampaignBanner(4502, VariantEvolution)
	want := "https://assets.example.com/assets/card_still_full1_4502_evolution.webp"
	if got != want {
		t.Errorf("CampaignBanner() = %q, want %q", got, want)
	}

	got = r.CampaignBanner(301, VariantNormal)
	want = "https://assets.example.com/assets/card_still_full1_301_normal.webp"
	if got != want {
		t.Errorf("CampaignBanner() = %q, want %q", got, want)
	}
}

func TestCharacterRender(t *testing.T) {
	r := NewResolver("https://assets.example.com")

	got := r.CharacterRender(74)
	want := "https://assets.example.com/assets/character_full1_74.png"
	if got != want {
		t.Errorf("CharacterRender() = %q, want %q", got, want)
	}
}
