package model

import "time"

// User roles.
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// User is a site account.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Token     string    `db:"token" json:"-"`
	Role      int       `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Favorite is one entry of a user's ordered favorite character list.
type Favorite struct {
	UserID      int64 `db:"user_id" json:"user_id"`
	CharacterID int64 `db:"character_id" json:"character_id"`
	Position    int   `db:"position" json:"position"`
}
