package models

// Inbound event types accepted over the chat socket.
const (
	EventJoin    = "join"
	EventLeave   = "leave"
	EventMessage = "send_message"
	EventTyping  = "typing"
)

// Outbound notice types broadcast to room members.
const (
	NoticeUserJoined = "user_joined"
	NoticeUserLeft   = "user_left"
	NoticeNewMessage = "new_message"
	NoticeUserTyping = "user_typing"
)

// DefaultRoom is used whenever an inbound event omits the room field.
const DefaultRoom = "general"

// Event is an inbound chat frame as decoded from a client connection.
type Event struct {
	Type     string `json:"type"`
	Room     string `json:"room"`
	Message  string `json:"message"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`

	// ClientID identifies the originating connection. It is stamped by the
	// transport before the event reaches the hub, never by the client.
	ClientID string `json:"-"`
}

// Notice is an outbound chat frame fanned out to room members.
type Notice struct {
	Event        string `json:"event"`
	Room         string `json:"room,omitempty"`
	Message      string `json:"message,omitempty"`
	UserID       uint   `json:"user_id,omitempty"`
	Username     string `json:"username,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}
