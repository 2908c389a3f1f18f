package types

import "time"

// LoginRequest signs in with a username or email plus password.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// TokenLoginRequest exchanges an identity-platform ID token for a session.
type TokenLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateFavoritesRequest replaces the user's ordered favorite character list.
type UpdateFavoritesRequest struct {
	CharacterIDs []int64 `json:"character_ids" binding:"required"`
}

// UsernameEmailRequest looks up the (censored) email behind a username.
type UsernameEmailRequest struct {
	Username string `json:"username" binding:"required"`
	Censored *bool  `json:"censored"`
}

// UsernameReminderRequest mails the username registered to an address.
type UsernameReminderRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ValidateUsernameRequest checks username availability.
type ValidateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// ValidateEmailRequest checks email availability.
type ValidateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// EventRequest creates or updates an event.
type EventRequest struct {
	Name         []string  `json:"name" binding:"required"`
	Type         string    `json:"type" binding:"required,oneof=song tour shuffle"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	BannerID     int64     `json:"banner_id" binding:"required"`
	GachaID      int64     `json:"gacha_id"`
	CharacterIDs []int64   `json:"character_ids"`
}

// ScoutRequest creates or updates a scout.
type ScoutRequest struct {
	Name         []string  `json:"name" binding:"required"`
	Type         string    `json:"type" binding:"required,oneof=scout 'feature scout'"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	BannerID     int64     `json:"banner_id" binding:"required"`
	EventID      *int64    `json:"event_id"`
	CharacterIDs []int64   `json:"character_ids"`
}
