package models

import "time"

// Comment rows are append-only.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	FightID   int64     `json:"fight_id" gorm:"not null;index:idx_comments_fight_created"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_comments_fight_created"`

	// Associations
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;"`
	Fight *Fight `json:"-" gorm:"foreignKey:FightID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentView is a comment joined with its author's username at read time.
type CommentView struct {
	ID        int64
	FightID   int64
	Content   string
	CreatedAt time.Time
	Username  string
}
