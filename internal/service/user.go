package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"makotools/internal/model"
	"makotools/internal/repository"
	"makotools/pkg/async"
	"makotools/pkg/email"
	"makotools/pkg/identity"
	"makotools/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"k8s.io/apimachinery/pkg/util/rand"
)

// Account error sentinels.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordIncorrect = errors.New("incorrect password")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidUsername   = errors.New("username must be 3-20 letters, digits or underscores")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

const sessionCacheTTL = 15 * time.Minute

type userService struct {
	userRepo       *repository.UserRepository
	redisClient    *redis.Client
	worker         *async.Worker
	emailService   *email.Service
	identityClient *identity.Client
	logger         *logger.Logger
}

// NewUserService creates the user service.
func NewUserService(userRepo *repository.UserRepository, redisClient *redis.Client, worker *async.Worker, emailService *email.Service, identityClient *identity.Client, logger *logger.Logger) UserService {
	return &userService{
		userRepo:       userRepo,
		redisClient:    redisClient,
		worker:         worker,
		emailService:   emailService,
		identityClient: identityClient,
		logger:         logger,
	}
}

// Register creates an account and queues the welcome mail.
func (s *userService) Register(ctx context.Context, username, emailAddr, password string) (*model.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	}
	if _, err := s.userRepo.GetByEmail(ctx, emailAddr); err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    emailAddr,
		Password: string(hashed),
		Token:    rand.String(32),
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.worker.Submit(async.Task{
		ID: "welcome_mail_" + user.Username,
		Handler: func(context.Context) error {
			return s.emailService.SendMail(email.TypeWelcome, email.MailData{
				To:       user.Email,
				UserName: user.Username,
			})
		},
		RetryMax: 2,
	})

	return user, nil
}

// Login authenticates with a username or email plus password.
func (s *userService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	var user *model.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return user, nil
}

// LoginWithIdentity verifies an identity-platform ID token and resolves the
// local account registered to the same email.
func (s *userService) LoginWithIdentity(ctx context.Context, idToken string) (*model.User, error) {
	id, err := s.identityClient.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, id.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, emailAddr string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByToken resolves a session token, serving from the Redis session cache
// when possible.
func (s *userService) GetByToken(ctx context.Context, token string) (*model.User, error) {
	cacheKey := "session:" + token
	cachedData, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var user model.User
		if err := json.Unmarshal(cachedData, &user); err == nil {
			return &user, nil
		}
	}

	user, err := s.userRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if data, err := json.Marshal(user); err == nil {
		s.redisClient.Set(ctx, cacheKey, data, sessionCacheTTL)
	}

	return user, nil
}

func (s *userService) Favorites(ctx context.Context, userID int64) ([]int64, error) {
	return s.userRepo.GetFavorites(ctx, userID)
}

func (s *userService) UpdateFavorites(ctx context.Context, userID int64, characterIDs []int64) error {
	return s.userRepo.ReplaceFavorites(ctx, userID, characterIDs)
}

func (s *userService) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

func (s *userService) EmailAvailable(ctx context.Context, emailAddr string) (bool, error) {
	_, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// SendUsernameReminder queues a reminder mail with the username registered
// to the address. An unknown address is not reported to the caller.
func (s *userService) SendUsernameReminder(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	s.worker.Submit(async.Task{
		ID: "username_reminder_" + user.Username,
		Handler: func(context.Context) error {
			return s.emailService.SendMail(email.TypeUsernameReminder, email.MailData{
				To:       user.Email,
				UserName: user.Username,
			})
		},
		RetryMax: 2,
	})

	return nil
}

// CensorEmail masks an address for display: the first two characters of the
// local part survive, and in the domain only the leading character and the
// dots do.
func CensorEmail(emailAddr string) string {
	at := strings.LastIndex(emailAddr, "@")
	if at < 0 {
		return emailAddr
	}

	local := []rune(emailAddr[:at])
	for i := range local {
		if i >= 2 {
			local[i] = '*'
		}
	}

	domain := []rune(emailAddr[at+1:])
	for i, ch := range domain {
		if i >= 1 && ch != '.' {
			domain[i] = '*'
		}
	}

	return string(local) + "@" + string(domain)
}
