package model

import "time"

// Event is a timed in-game event (song, tour or shuffle).
type Event struct {
	EventID      int64         `db:"event_id" json:"event_id"`
	Name         LocalizedText `db:"name" json:"name"`
	Type         string        `db:"type" json:"type"`
	StartDate    time.Time     `db:"start_date" json:"start_date"`
	EndDate      time.Time     `db:"end_date" json:"end_date"`
	BannerID     int64         `db:"banner_id" json:"banner_id"`
	GachaID      int64         `db:"gacha_id" json:"gacha_id"`
	CharacterIDs IDList        `db:"character_ids" json:"character_ids"`
	CreatedAt    time.Time     `db:"created_at" json:"-"`
	UpdatedAt    time.Time     `db:"updated_at" json:"-"`
}

// Campaign normalizes the event into the common campaign shape.
func (e Event) Campaign() Campaign {
	return Campaign{
		ID:           e.EventID,
		Category:     Category(e.Type),
		Name:         e.Name.First(),
		Start:        e.StartDate,
		End:          e.EndDate,
		BannerID:     e.BannerID,
		CharacterIDs: e.CharacterIDs,
	}
}
