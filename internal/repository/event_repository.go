package repository

import (
	"context"

	"makotools/internal/model"

	"github.com/jmoiron/sqlx"
)

// EventRepository stores timed in-game events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns all events ordered by start date.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	query := `SELECT * FROM events ORDER BY start_date ASC`
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns one event.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	var event model.Event
	query := `SELECT * FROM events WHERE event_id = ?`
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	query := `
		INSERT INTO events (name, type, start_date, end_date, banner_id, gacha_id, character_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		e.Name, e.Type, e.StartDate, e.EndDate, e.BannerID, e.GachaID, e.CharacterIDs)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.EventID = id
	return nil
}

// Update replaces the mutable fields of an event.
func (r *EventRepository) Update(ctx context.Context, e *model.Event) error {
	query := `
		UPDATE events
		SET name = ?, type = ?, start_date = ?, end_date = ?, banner_id = ?, gacha_id = ?, character_ids = ?
		WHERE event_id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		e.Name, e.Type, e.StartDate, e.EndDate, e.BannerID, e.GachaID, e.CharacterIDs, e.EventID)
	return err
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE event_id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
