package middleware

import (
	"net/http"

	"makotools/internal/constants"
	"makotools/internal/model"
	"makotools/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminAuth is UserAuth plus an administrator role check.
func AdminAuth(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusOK, gin.H{"code": 401, "msg": constants.ErrUnauthorized})
			c.Abort()
			return
		}

		user, err := userService.GetByToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"code": 401, "msg": constants.ErrInvalidToken})
			c.Abort()
			return
		}

		if user.Role != model.RoleAdmin {
			c.JSON(http.StatusOK, gin.H{"code": 403, "msg": constants.ErrAdminOnly})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Next()
	}
}
