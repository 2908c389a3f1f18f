package handler

import (
	"net/http"
	"strconv"

	"makotools/internal/constants"
	"makotools/internal/service"
	"makotools/pkg/assets"
	"makotools/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CharacterHandler serves the character roster.
type CharacterHandler struct {
	characterService *service.CharacterService
	assets           *assets.Resolver
	logger           *logger.Logger
}

// NewCharacterHandler creates a character handler.
func NewCharacterHandler(characterService *service.CharacterService, assets *assets.Resolver, logger *logger.Logger) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
		assets:           assets,
		logger:           logger,
	}
}

// GetCharacters lists all characters in display order.
// GET /api/v1/characters
func (h *CharacterHandler) GetCharacters(c *gin.Context) {
	characters, err := h.characterService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list characters", "error", err)
		c.JSON(http.StatusOK, gin.H{"code": 500, "msg": constants.ErrInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "msg": constants.SuccessGet, "data": characters})
}

// GetCharacterByID returns one character with its render URL.
// GET /api/v1/characters/:id
func (h *CharacterHandler) GetCharacterByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "msg": constants.ErrInvalidID})
		return
	}

	character, err := h.characterService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 404, "msg": constants.ErrCharacterNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"msg":  constants.SuccessGet,
		"data": gin.H{
			"character":  character,
			"render_url": h.assets.CharacterRender(character.RenderID),
		},
	})
}
