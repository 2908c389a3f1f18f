package model

import "time"

// Category tags the source shape a campaign was normalized from.
type Category string

const (
	CategorySong         Category = "song"
	CategoryTour         Category = "tour"
	CategoryShuffle      Category = "shuffle"
	CategoryScout        Category = "scout"
	CategoryFeatureScout Category = "feature scout"
	CategoryBirthday     Category = "birthday"
)

// BirthdayWindow is how long a birthday campaign stays live.
const BirthdayWindow = 24 * time.Hour

// Campaign is the common shape every time-bounded promotional entity is
// normalized into: events, scouts and projected birthdays all become one
// comparable start/end range.
type Campaign struct {
	ID           int64     `json:"id"`
	Category     Category  `json:"category"`
	Name         string    `json:"name"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	BannerID     int64     `json:"banner_id"`
	CharacterID  int64     `json:"character_id,omitempty"`
	CharacterIDs IDList    `json:"character_ids,omitempty"`
}

// Live reports whether the campaign interval contains now.
func (c Campaign) Live(now time.Time) bool {
	return !now.Before(c.Start) && now.Before(c.End)
}

// Features reports whether the campaign is tied to the given character:
// the owner for birthdays, a featured card character otherwise.
func (c Campaign) Features(characterID int64) bool {
	if c.Category == CategoryBirthday {
		return c.CharacterID == characterID
	}
	return c.CharacterIDs.Contains(characterID)
}

// Same reports whether other is the same campaign. IDs are only unique
// within a category, so the pair identifies a campaign.
func (c Campaign) Same(other Campaign) bool {
	return c.Category == other.Category && c.ID == other.ID
}
