package chathub

import "agrismart/backend/internal/models"

// Client is the interface for one live connection, whatever its
// transport. The hub manages clients uniformly through it.
type Client interface {
	// GetClientID returns the unique identifier of the connection itself
	// (not the user: one user may hold several connections).
	GetClientID() string

	// GetSendChannel returns the channel the hub writes outbound notices
	// to. Delivery is fire-and-forget; the hub drops clients whose
	// channel is full.
	GetSendChannel() chan<- models.Notice

	// Run starts the connection's read and write loops.
	Run()

	// Close releases the connection's resources and stops its loops.
	Close()
}
