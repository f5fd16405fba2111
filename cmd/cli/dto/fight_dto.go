package dto

import "time"

type FightRequest struct {
	EventID  *int64    `json:"eventId,omitempty"`
	Title    string    `json:"title,omitempty"`
	Fighter1 string    `json:"fighter1"`
	Fighter2 string    `json:"fighter2"`
	Date     time.Time `json:"date"`
}

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

type EventRequest struct {
	Title     string    `json:"title"`
	Promotion string    `json:"promotion,omitempty"`
	Date      time.Time `json:"date"`
}

type EventResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Promotion string    `json:"promotion"`
	Date      time.Time `json:"date"`
}

type RatingRequest struct {
	FightID int64 `json:"fightId"`
	Rating  int   `json:"rating"`
}

type RatingResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	FightID   int64     `json:"fightId"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RatingSummaryResponse struct {
	FightID       int64   `json:"fightId"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
	UserRating    *int    `json:"userRating"`
}

type CommentRequest struct {
	FightID int64  `json:"fightId"`
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username"`
}
