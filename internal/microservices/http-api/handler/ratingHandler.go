package handler

import (
	"net/http"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/middleware"
	"fightcard/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(public, gated *gin.RouterGroup) {
	public.GET("/fights/:fight_id/rating", h.GetSummary)
	gated.POST("/ratings", h.Upsert)
}

// Upsert creates or replaces the caller's rating of a fight
// POST /api/ratings
func (h *RatingHandler) Upsert(c *gin.Context) {
	var req dto.UpsertRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rating, err := h.ratingService.UpsertRating(c.Request.Context(), middleware.CurrentViewer(c), req.FightID, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// GetSummary returns the average, count and the viewer's own rating
// GET /api/fights/:fight_id/rating
func (h *RatingHandler) GetSummary(c *gin.Context) {
	fightID, err := paramID(c, "fight_id")
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.ratingService.AverageAndViewerRating(c.Request.Context(), fightID, middleware.CurrentViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
