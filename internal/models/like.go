package models

import (
	"time"
)

// Like is keyed by (post_id, user_id), so a user can like a post at most once.
type Like struct {
	PostID    string       `gorm:"type:uuid;primaryKey" json:"post_id"`
	Post      *Post        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    string       `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	User      *UserSummary `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	CreatedAt time.Time    `gorm:"index" json:"created_at"`
}
