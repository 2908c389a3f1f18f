package handler

import (
	"errors"
	"net/http"

	"makotools/internal/constants"
	"makotools/internal/service"
	"makotools/internal/types"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler serves accounts, sessions and favorite lists.
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register creates an account.
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			c.JSON(http.StatusOK, gin.H{"code": 400, "msg": err.Error()})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusOK, gin.H{"code": 409, "msg": constants.ErrUsernameExists})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusOK, gin.H{"code": 409, "msg": constants.ErrEmailExists})
		default:
			h.logger.Error("failed to register user", "error", err)
			c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  constants.SuccessRegister,
		"data": gin.H{"token": user.Token, "user": user},
	})
}

// Login signs in with a username or email plus password.
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrUserNotFound})
		case errors.Is(err, service.ErrPasswordIncorrect):
			c.JSON(http.StatusOK, gin.H{"code": 403, "msg": constants.ErrPasswordIncorrect})
		default:
			h.logger.Error("login failed", "error", err)
			c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  constants.SuccessLogin,
		"data": gin.H{"token": user.Token, "user": user},
	})
}

// TokenLogin exchanges an identity-platform ID token for a local session.
// POST /api/v1/auth/token
func (h *UserHandler) TokenLogin(c *gin.Context) {
	var req types.TokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user, err := h.userService.LoginWithIdentity(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrUserNotFound})
			return
		}
		h.logger.Error("identity token exchange failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 403, "msg": constants.ErrIdentityRejected})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  constants.SuccessLogin,
		"data": gin.H{"token": user.Token, "user": user},
	})
}

// GetUserInfo returns the signed-in account.
// GET /api/v1/user/info
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrUserNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": user})
}

// GetFavorites returns the signed-in user's favorite character IDs in order.
// GET /api/v1/user/favorites
func (h *UserHandler) GetFavorites(c *gin.Context) {
	userID := c.GetInt64("user_id")

	favorites, err := h.userService.Favorites(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load favorites", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": favorites})
}

// UpdateFavorites replaces the favorite list.
// PUT /api/v1/user/favorites
func (h *UserHandler) UpdateFavorites(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req types.UpdateFavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	if err := h.userService.UpdateFavorites(c.Request.Context(), userID, req.CharacterIDs); err != nil {
		h.logger.Error("failed to update favorites", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessUpdate})
}

// UsernameEmail returns the (by default censored) email behind a username.
// POST /api/v1/auth/username/email
func (h *UserHandler) UsernameEmail(c *gin.Context) {
	var req types.UsernameEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	user, err := h.userService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrUserNotFound})
		return
	}

	emailAddr := user.Email
	if req.Censored == nil || *req.Censored {
		emailAddr = service.CensorEmail(emailAddr)
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": gin.H{"email": emailAddr}})
}

// UsernameReminder mails the username registered to an address. The response
// does not reveal whether the address exists.
// POST /api/v1/auth/username/remind
func (h *UserHandler) UsernameReminder(c *gin.Context) {
	var req types.UsernameReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	if err := h.userService.SendUsernameReminder(c.Request.Context(), req.Email); err != nil {
		h.logger.Error("failed to queue username reminder", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.MsgUsernameReminderSent})
}

// ValidateUsername reports whether a username is still available.
// POST /api/v1/auth/username/validate
func (h *UserHandler) ValidateUsername(c *gin.Context) {
	var req types.ValidateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	available, err := h.userService.UsernameAvailable(c.Request.Context(), req.Username)
	if err != nil {
		h.logger.Error("username validation failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": gin.H{"available": available}})
}

// ValidateEmail reports whether an email is still available.
// POST /api/v1/auth/email/validate
func (h *UserHandler) ValidateEmail(c *gin.Context) {
	var req types.ValidateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidParams})
		return
	}

	available, err := h.userService.EmailAvailable(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("email validation failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": gin.H{"available": available}})
}
