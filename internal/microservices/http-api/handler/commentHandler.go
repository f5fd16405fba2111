package handler

import (
	"net/http"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/middleware"
	"fightcard/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(public, gated *gin.RouterGroup) {
	public.GET("/fights/:fight_id/comments", h.List)
	gated.POST("/comments", h.Create)
}

// Create posts a comment on a fight
// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), middleware.CurrentViewer(c), req.FightID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// List returns a fight's comments, most recent first
// GET /api/fights/:fight_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	fightID, err := paramID(c, "fight_id")
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), fightID)
	if err != nil {
		respondError(c, err)
		return
	}

	// drain before writing so a mid-stream failure still gets a proper status
	out := make([]dto.CommentResponse, 0)
	for view, err := range comments {
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, *dto.FromModelToCommentResponse(&view))
	}
	c.JSON(http.StatusOK, out)
}
