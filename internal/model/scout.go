package model

import "time"

// Scout is a gacha banner period for obtaining cards.
type Scout struct {
	GachaID      int64         `db:"gacha_id" json:"gacha_id"`
	Name         LocalizedText `db:"name" json:"name"`
	Type         string        `db:"type" json:"type"`
	StartDate    time.Time     `db:"start_date" json:"start_date"`
	EndDate      time.Time     `db:"end_date" json:"end_date"`
	BannerID     int64         `db:"banner_id" json:"banner_id"`
	EventID      *int64        `db:"event_id" json:"event_id,omitempty"`
	CharacterIDs IDList        `db:"character_ids" json:"character_ids"`
	CreatedAt    time.Time     `db:"created_at" json:"-"`
	UpdatedAt    time.Time     `db:"updated_at" json:"-"`
}

// Campaign normalizes the scout into the common campaign shape.
func (s Scout) Campaign() Campaign {
	return Campaign{
		ID:           s.GachaID,
		Category:     Category(s.Type),
		Name:         s.Name.First(),
		Start:        s.StartDate,
		End:          s.EndDate,
		BannerID:     s.BannerID,
		CharacterIDs: s.CharacterIDs,
	}
}
