package models

import (
	"time"

	"github.com/lib/pq"
)

// FarmingTip is a knowledge-base article, optionally authored by a user.
type FarmingTip struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Category  string         `gorm:"not null;index" json:"category"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	AuthorID  *uint          `json:"author_id,omitempty"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	Language  string         `gorm:"default:en;index" json:"language"`
	Views     int            `gorm:"default:0" json:"views"`
	Likes     int            `gorm:"default:0" json:"likes"`
	Image     string         `json:"image"`
	VideoURL  string         `json:"video_url"`
	CreatedAt time.Time      `json:"created_at"`
}
