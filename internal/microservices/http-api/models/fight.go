package models

import "time"

type Fight struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EventID   *int64    `json:"event_id,omitempty" gorm:"index"` // nil for stand-alone fights
	Title     string    `json:"title" gorm:"not null;default:''"`
	Fighter1  string    `json:"fighter1" gorm:"column:fighter1;not null"`
	Fighter2  string    `json:"fighter2" gorm:"column:fighter2;not null"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Event *Event `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
}

func (Fight) TableName() string {
	return "fights"
}

// FightWithRating is one row of the aggregation view: a fight's static
// fields plus the community average and the viewer's own score.
type FightWithRating struct {
	ID            int64
	EventID       *int64
	Title         string
	Fighter1      string `gorm:"column:fighter1"`
	Fighter2      string `gorm:"column:fighter2"`
	Date          time.Time
	CreatedAt     time.Time
	AverageRating float64
	RatingCount   int64
	UserRating    *int // nil for anonymous viewers and viewers who have not rated
}
