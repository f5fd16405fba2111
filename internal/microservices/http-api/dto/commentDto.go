package dto

import (
	"time"

	"fightcard/internal/microservices/http-api/models"
)

// MaxCommentLength bounds comment content, in characters.
const MaxCommentLength = 5000

// CreateCommentRequest for posting a comment on a fight
type CreateCommentRequest struct {
	FightID int64  `json:"fightId" binding:"required,gt=0"`
	Content string `json:"content" binding:"required,notblank"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username"`
}

// FromModelToCommentResponse converts a CommentView to CommentResponse DTO
func FromModelToCommentResponse(c *models.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Username:  c.Username,
	}
}
