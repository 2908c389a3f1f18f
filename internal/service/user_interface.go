package service

import (
	"context"

	"makotools/internal/model"
)

// UserService manages site accounts, sessions and favorite lists.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, identifier, password string) (*model.User, error)
	LoginWithIdentity(ctx context.Context, idToken string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByToken(ctx context.Context, token string) (*model.User, error)
	Favorites(ctx context.Context, userID int64) ([]int64, error)
	UpdateFavorites(ctx context.Context, userID int64, characterIDs []int64) error
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)
	SendUsernameReminder(ctx context.Context, emailAddr string) error
}
