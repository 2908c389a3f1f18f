package repository

import (
	"context"

	"makotools/internal/model"

	"github.com/jmoiron/sqlx"
)

// UserRepository stores site accounts and their favorite lists.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, email, password, token, role)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query, u.Username, u.Email, u.Password, u.Token, u.Role)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// GetByID returns a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE id = ?`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE username = ?`
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE email = ?`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByToken returns a user by session token.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE token = ?`
	if err := r.db.GetContext(ctx, &user, query, token); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateToken replaces the user's session token.
func (r *UserRepository) UpdateToken(ctx context.Context, userID int64, token string) error {
	query := `UPDATE users SET token = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, token, userID)
	return err
}

// GetFavorites returns the user's favorite character IDs in list order.
// Duplicates are returned as stored; deduplication is not enforced here.
func (r *UserRepository) GetFavorites(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	query := `SELECT character_id FROM user_favorites WHERE user_id = ? ORDER BY position ASC`
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceFavorites atomically replaces the user's favorite list.
func (r *UserRepository) ReplaceFavorites(ctx context.Context, userID int64, characterIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_favorites WHERE user_id = ?`, userID); err != nil {
		return err
	}

	insert := `INSERT INTO user_favorites (user_id, character_id, position) VALUES (?, ?, ?)`
	for i, id := range characterIDs {
		if _, err := tx.ExecContext(ctx, insert, userID, id, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}
