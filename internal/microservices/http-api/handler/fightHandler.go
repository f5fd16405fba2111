package handler

import (
	"net/http"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/middleware"
	"fightcard/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FightHandler struct {
	fightService service.FightService
}

func NewFightHandler(fightService service.FightService) *FightHandler {
	return &FightHandler{fightService: fightService}
}

// RegisterRoutes registers fight routes. gated carries RequireViewer.
func (h *FightHandler) RegisterRoutes(public, gated *gin.RouterGroup) {
	public.GET("/fights", h.List)
	public.GET("/fights/:fight_id", h.Get)

	gated.POST("/fights", h.Create)
	gated.PUT("/fights/:fight_id", h.Update)
	gated.DELETE("/fights/:fight_id", h.Delete)
}

// List returns every fight with its community average and the viewer's score
// GET /api/fights?eventId=1
func (h *FightHandler) List(c *gin.Context) {
	var query dto.FightQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	fights, err := h.fightService.ListFights(c.Request.Context(), middleware.CurrentViewer(c), query.EventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fights)
}

// Get returns one fight row
// GET /api/fights/:fight_id
func (h *FightHandler) Get(c *gin.Context) {
	id, err := paramID(c, "fight_id")
	if err != nil {
		respondError(c, err)
		return
	}

	fight, err := h.fightService.GetFight(c.Request.Context(), middleware.CurrentViewer(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fight)
}

// Create adds a fight
// POST /api/fights
func (h *FightHandler) Create(c *gin.Context) {
	var req dto.FightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fight, err := h.fightService.CreateFight(c.Request.Context(), middleware.CurrentViewer(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fight)
}

// Update replaces a fight's fields
// PUT /api/fights/:fight_id
func (h *FightHandler) Update(c *gin.Context) {
	id, err := paramID(c, "fight_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.FightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fight, err := h.fightService.UpdateFight(c.Request.Context(), middleware.CurrentViewer(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fight)
}

// Delete removes a fight with its ratings and comments
// DELETE /api/fights/:fight_id
func (h *FightHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "fight_id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.fightService.DeleteFight(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fight deleted"})
}
