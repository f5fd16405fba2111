package dto

import (
	"time"

	"fightcard/internal/microservices/http-api/models"
)

// FightRequest is the body of create and update. EventID is optional;
// stand-alone fights have none.
type FightRequest struct {
	EventID  *int64    `json:"eventId" binding:"omitempty,gt=0"`
	Title    string    `json:"title" binding:"max=200"`
	Fighter1 string    `json:"fighter1" binding:"required,notblank,max=100"`
	Fighter2 string    `json:"fighter2" binding:"required,notblank,max=100"`
	Date     time.Time `json:"date" binding:"required"`
}

// ToModel builds a Fight from the request. A blank title becomes
// "<fighter1> vs <fighter2>".
func (r *FightRequest) ToModel() *models.Fight {
	return &models.Fight{
		EventID:  r.EventID,
		Title:    r.Title,
		Fighter1: r.Fighter1,
		Fighter2: r.Fighter2,
		Date:     r.Date,
	}
}

// FightQuery is the query string of the fight list.
type FightQuery struct {
	EventID *int64 `form:"eventId" binding:"omitempty,gt=0"`
}

// FightResponse is one row of the fight list: static fields plus the
// community average and the viewer's own score (null when absent).
type FightResponse struct {
	ID            int64     `json:"id"`
	EventID       *int64    `json:"eventId"`
	Title         string    `json:"title"`
	Fighter1      string    `json:"fighter1"`
	Fighter2      string    `json:"fighter2"`
	Date          time.Time `json:"date"`
	AverageRating float64   `json:"averageRating"`
	RatingCount   int64     `json:"ratingCount"`
	UserRating    *int      `json:"userRating"`
}

func FromModelToFightResponse(f *models.FightWithRating) *FightResponse {
	return &FightResponse{
		ID:            f.ID,
		EventID:       f.EventID,
		Title:         f.Title,
		Fighter1:      f.Fighter1,
		Fighter2:      f.Fighter2,
		Date:          f.Date,
		AverageRating: f.AverageRating,
		RatingCount:   f.RatingCount,
		UserRating:    f.UserRating,
	}
}

// FromModelsToFightResponses keeps the input order and never returns nil,
// so an empty list serializes as [].
func FromModelsToFightResponses(list []models.FightWithRating) []FightResponse {
	out := make([]FightResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModelToFightResponse(&list[i]))
	}
	return out
}
