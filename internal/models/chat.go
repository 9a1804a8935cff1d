package models

import "time"

// ChatMessage is one persisted row of the room message log. Rows are
// append-only: nothing in the backend updates or deletes them.
type ChatMessage struct {
	// ID is assigned by the database and is monotonic per insert order.
	ID uint `gorm:"primaryKey" json:"id"`
	// SenderID references the User who sent the message. The chat core
	// never validates it; display data is looked up best-effort.
	SenderID uint `gorm:"not null;index:idx_room_sender" json:"sender_id"`
	// Message is the body text. An absent body is stored as "".
	Message string `gorm:"type:text;not null" json:"message"`
	// Room is the logical channel the message was sent to.
	Room string `gorm:"default:general;index:idx_room_sender" json:"room"`
	// Language is the detected language tag of the body ("en" when unknown).
	Language string `gorm:"default:en" json:"language"`
	// Image is an optional reference to an uploaded attachment.
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
