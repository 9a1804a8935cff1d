package models

import "time"

// User represents a registered account: farmers, buyers and experts share
// the same table and are distinguished by Role.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"` // bcrypt hash; empty for Google-only accounts
	Phone        string    `json:"phone"`
	Role         string    `gorm:"default:farmer" json:"role"`
	Language     string    `gorm:"default:en" json:"language"`
	Location     string    `json:"location"`
	FarmSize     float64   `json:"farm_size"`
	ProfileImage string    `json:"profile_image"`
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`
	GoogleID     string    `gorm:"index" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
