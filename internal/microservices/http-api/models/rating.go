package models

import "time"

const (
	MinScore = 1
	MaxScore = 5
)

// Rating is unique per (user_id, fight_id); idx_ratings_user_fight is the
// conflict target of the upsert.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_fight"`
	FightID   int64     `json:"fight_id" gorm:"not null;uniqueIndex:idx_ratings_user_fight;index"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
	Fight *Fight `json:"-" gorm:"foreignKey:FightID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingSummary is the per-fight aggregation: mean over all ratings (0 when
// unrated), how many there are, and the viewer's score if any.
type RatingSummary struct {
	FightID     int64
	Average     float64
	Count       int64
	ViewerScore *int
}
