package repository

import (
	"context"

	"makotools/internal/model"

	"github.com/jmoiron/sqlx"
)

// CharacterRepository reads the character roster.
type CharacterRepository struct {
	db *sqlx.DB
}

// NewCharacterRepository creates a character repository.
func NewCharacterRepository(db *sqlx.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// List returns all characters in display order.
func (r *CharacterRepository) List(ctx context.Context) ([]model.Character, error) {
	var characters []model.Character
	query := `SELECT * FROM characters ORDER BY sort_id ASC`
	if err := r.db.SelectContext(ctx, &characters, query); err != nil {
		return nil, err
	}
	return characters, nil
}

// GetByID returns one character.
func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*model.Character, error) {
	var character model.Character
	query := `SELECT * FROM characters WHERE character_id = ?`
	if err := r.db.GetContext(ctx, &character, query, id); err != nil {
		return nil, err
	}
	return &character, nil
}
