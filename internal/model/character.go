package model

import "time"

// Character is a playable game character.
type Character struct {
	CharacterID    int64         `db:"character_id" json:"character_id"`
	FirstName      LocalizedText `db:"first_name" json:"first_name"`
	LastName       LocalizedText `db:"last_name" json:"last_name"`
	CharacterVoice LocalizedText `db:"character_voice" json:"character_voice"`
	ImageColor     string        `db:"image_color" json:"image_color"`
	BirthdayMonth  int           `db:"birthday_month" json:"birthday_month"`
	BirthdayDay    int           `db:"birthday_day" json:"birthday_day"`
	RenderID       int64         `db:"render_id" json:"render_id"`
	SortID         int64         `db:"sort_id" json:"sort_id"`
	CreatedAt      time.Time     `db:"created_at" json:"-"`
	UpdatedAt      time.Time     `db:"updated_at" json:"-"`
}

// BirthdayCampaign projects the character's recurring birthday onto the
// nearest occurrence that has not already finished relative to now, wrapped
// in the standard one-day window.
func (ch Character) BirthdayCampaign(now time.Time) Campaign {
	start := time.Date(now.Year(), time.Month(ch.BirthdayMonth), ch.BirthdayDay, 0, 0, 0, 0, now.Location())
	end := start.Add(BirthdayWindow)
	if end.Before(now) {
		start = time.Date(now.Year()+1, time.Month(ch.BirthdayMonth), ch.BirthdayDay, 0, 0, 0, 0, now.Location())
		end = start.Add(BirthdayWindow)
	}

	return Campaign{
		ID:          ch.CharacterID,
		Category:    CategoryBirthday,
		Name:        ch.FirstName.First() + "'s Birthday",
		Start:       start,
		End:         end,
		BannerID:    ch.RenderID,
		CharacterID: ch.CharacterID,
	}
}
