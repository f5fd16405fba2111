package handler

import (
	"net/http"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/middleware"
	"fightcard/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) RegisterRoutes(public, gated *gin.RouterGroup) {
	public.GET("/events", h.List)
	public.GET("/events/:event_id", h.Get)

	gated.POST("/events", h.Create)
	gated.PUT("/events/:event_id", h.Update)
	gated.DELETE("/events/:event_id", h.Delete)
}

// GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /api/events/:event_id
func (h *EventHandler) Get(c *gin.Context) {
	id, err := paramID(c, "event_id")
	if err != nil {
		respondError(c, err)
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), middleware.CurrentViewer(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// PUT /api/events/:event_id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := paramID(c, "event_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), middleware.CurrentViewer(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DELETE /api/events/:event_id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "event_id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
