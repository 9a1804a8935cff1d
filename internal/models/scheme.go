package models

import "time"

// Scheme is a government assistance program farmers can look up.
// "All" in State marks nationwide schemes.
type Scheme struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Category           string    `gorm:"not null;index" json:"category"`
	Description        string    `gorm:"type:text" json:"description"`
	Eligibility        string    `gorm:"type:text" json:"eligibility"`
	Benefits           string    `gorm:"type:text" json:"benefits"`
	ApplicationProcess string    `gorm:"type:text" json:"application_process"`
	ContactInfo        string    `json:"contact_info"`
	State              string    `gorm:"index" json:"state"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}
