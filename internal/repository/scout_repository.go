package repository

import (
	"context"

	"makotools/internal/model"

	"github.com/jmoiron/sqlx"
)

// ScoutRepository stores gacha scout banners.
type ScoutRepository struct {
	db *sqlx.DB
}

// NewScoutRepository creates a scout repository.
func NewScoutRepository(db *sqlx.DB) *ScoutRepository {
	return &ScoutRepository{db: db}
}

// List returns all scouts ordered by start date.
func (r *ScoutRepository) List(ctx context.Context) ([]model.Scout, error) {
	var scouts []model.Scout
	query := `SELECT * FROM scouts ORDER BY start_date ASC`
	if err := r.db.SelectContext(ctx, &scouts, query); err != nil {
		return nil, err
	}
	return scouts, nil
}

// GetByID returns one scout.
func (r *ScoutRepository) GetByID(ctx context.Context, id int64) (*model.Scout, error) {
	var scout model.Scout
	query := `SELECT * FROM scouts WHERE gacha_id = ?`
	if err := r.db.GetContext(ctx, &scout, query, id); err != nil {
		return nil, err
	}
	return &scout, nil
}

// Create inserts a new scout.
func (r *ScoutRepository) Create(ctx context.Context, s *model.Scout) error {
	query := `
		INSERT INTO scouts (name, type, start_date, end_date, banner_id, event_id, character_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		s.Name, s.Type, s.StartDate, s.EndDate, s.BannerID, s.EventID, s.CharacterIDs)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	s.GachaID = id
	return nil
}

// Update replaces the mutable fields of a scout.
func (r *ScoutRepository) Update(ctx context.Context, s *model.Scout) error {
	query := `
		UPDATE scouts
		SET name = ?, type = ?, start_date = ?, end_date = ?, banner_id = ?, event_id = ?, character_ids = ?
		WHERE gacha_id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		s.Name, s.Type, s.StartDate, s.EndDate, s.BannerID, s.EventID, s.CharacterIDs, s.GachaID)
	return err
}

// Delete removes a scout.
func (r *ScoutRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM scouts WHERE gacha_id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
