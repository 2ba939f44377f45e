package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "yemalin/internal/errors"
	"yemalin/internal/models"
	"yemalin/internal/pagination"
	"yemalin/internal/services"
)

// UniverseHandler serves the catalogue listing.
type UniverseHandler struct {
	universeService services.UniverseServicer
}

// NewUniverseHandler creates a new UniverseHandler.
func NewUniverseHandler(universeService services.UniverseServicer) *UniverseHandler {
	return &UniverseHandler{universeService: universeService}
}

// UniverseQuery holds the listing's query parameters.
type UniverseQuery struct {
	pagination.PageRequest
	Class models.AssetClass `form:"class" binding:"omitempty,asset_class"`
}

// List renders one page of the universe, optionally filtered by class.
func (h *UniverseHandler) List(c *gin.Context) {
	var q UniverseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, bindingMessage(err, map[string]string{
			"Page":     "Page",
			"PageSize": "Page size",
			"Class":    "Asset class",
		})))
		return
	}

	resp, err := h.universeService.ListAssets(q.PageRequest, q.Class)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "universe.html", gin.H{
		"Title":   "Universe",
		"Classes": models.AssetClasses,
		"Class":   q.Class,
		"Page":    resp,
	})
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
