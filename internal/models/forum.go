package models

import (
	"time"

	"github.com/lib/pq"
)

// ForumPost is a community discussion thread.
type ForumPost struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Category  string         `gorm:"default:general;index" json:"category"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	Views     int            `gorm:"default:0" json:"views"`
	Likes     int            `gorm:"default:0" json:"likes"`
	IsPinned  bool           `gorm:"default:false" json:"is_pinned"`
	CreatedAt time.Time      `json:"created_at"`
}

// ForumComment is a reply under a forum post.
type ForumComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     int       `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
