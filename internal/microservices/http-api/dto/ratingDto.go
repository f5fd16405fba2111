package dto

import (
	"time"

	"fightcard/internal/microservices/http-api/models"
)

// UpsertRatingRequest creates or replaces the caller's rating of a fight.
// The 1..5 range is enforced by the rating service.
type UpsertRatingRequest struct {
	FightID int64 `json:"fightId" binding:"required,gt=0"`
	Rating  int   `json:"rating" binding:"required"`
}

// RatingResponse for returning the stored rating row
type RatingResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	FightID   int64     `json:"fightId"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		UserID:    rating.UserID,
		FightID:   rating.FightID,
		Rating:    rating.Score,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// RatingSummaryResponse is the aggregate of one fight. UserRating is null
// for anonymous viewers and viewers who have not rated.
type RatingSummaryResponse struct {
	FightID       int64   `json:"fightId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
	UserRating    *int    `json:"userRating"`
}

func FromModelToRatingSummaryResponse(s *models.RatingSummary) *RatingSummaryResponse {
	return &RatingSummaryResponse{
		FightID:       s.FightID,
		AverageRating: s.Average,
		RatingCount:   s.Count,
		UserRating:    s.ViewerScore,
	}
}
