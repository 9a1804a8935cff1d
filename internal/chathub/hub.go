package chathub

import (
	"log"
	"strings"
	"time"

	"agrismart/backend/internal/models"

	"github.com/abadojack/whatlanggo"
)

// Store is the slice of the storage layer the hub depends on: appending
// to the message log, publishing notices for fan-out, and resolving
// sender display data.
type Store interface {
	SaveChatMessage(msg *models.ChatMessage) error
	PublishNotice(room string, notice models.Notice) error
	UserDisplayInfo(userID uint) (name, avatar string, err error)
}

// Hub is the room broadcast router. A single goroutine (Run) owns all
// hub state, so event handling needs no locking: per-room delivery order
// is the order events were taken off the channels.
type Hub struct {
	Clients map[string]Client
	Roster  *Roster

	RegisterCh   chan Client
	UnregisterCh chan Client
	IncomingCh   chan models.Event
	// PubSubCh carries notices published by any server instance (via the
	// Redis bridge) back in for local fan-out.
	PubSubCh chan models.Notice

	store Store
}

// NewHub wires a hub around a storage backend and a presence registry.
func NewHub(store Store, roster *Roster) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		Roster:       roster,
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		IncomingCh:   make(chan models.Event),
		PubSubCh:     make(chan models.Notice),
		store:        store,
	}
}

// Run is the hub's dispatcher loop. Each event is handled to completion,
// including the synchronous persistence write, before the next is taken.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetClientID()] = client

		case client := <-h.UnregisterCh:
			h.removeClient(client)

		case evt := <-h.IncomingCh:
			h.handleEvent(evt)

		case notice := <-h.PubSubCh:
			h.deliver(notice)
		}
	}
}

func (h *Hub) handleEvent(evt models.Event) {
	room := evt.Room
	if room == "" {
		room = models.DefaultRoom
	}

	switch evt.Type {
	case models.EventJoin:
		h.Roster.Join(evt.ClientID, room)
		h.broadcast(room, models.Notice{
			Event:   models.NoticeUserJoined,
			Message: "User joined " + room,
		}, "")

	case models.EventLeave:
		h.Roster.Leave(evt.ClientID, room)
		h.broadcast(room, models.Notice{
			Event:   models.NoticeUserLeft,
			Message: "User left " + room,
		}, "")

	case models.EventMessage:
		h.handleMessage(evt, room)

	case models.EventTyping:
		username := evt.Username
		if username == "" {
			username = "User"
		}
		// Transient UI signal: never persisted, sender excluded.
		h.broadcast(room, models.Notice{
			Event:    models.NoticeUserTyping,
			Username: username,
		}, evt.ClientID)

	default:
		log.Printf("WARNING: Unknown chat event %q from client %s", evt.Type, evt.ClientID)
	}
}

// handleMessage persists the message, then broadcasts it. The append
// happens-before the publish so history can never miss a message that
// was already seen live. A failed append is logged and the notice still
// goes out; the room keeps working.
func (h *Hub) handleMessage(evt models.Event, room string) {
	msg := &models.ChatMessage{
		SenderID: evt.UserID,
		Message:  evt.Message,
		Room:     room,
		Language: detectLanguage(evt.Message),
	}
	if err := h.store.SaveChatMessage(msg); err != nil {
		log.Printf("ERROR: Failed to persist message for room %s: %v", room, err)
	}

	name, avatar, err := h.store.UserDisplayInfo(evt.UserID)
	if err != nil {
		name, avatar = "Anonymous", ""
	}

	notice := models.Notice{
		Event:        models.NoticeNewMessage,
		UserID:       evt.UserID,
		Username:     name,
		ProfileImage: avatar,
		Message:      evt.Message,
		Timestamp:    time.Now().Format(time.RFC3339),
		Room:         room,
	}

	if err := h.store.PublishNotice(room, notice); err != nil {
		// Members on this instance still get the message.
		log.Printf("ERROR: Failed to publish message for room %s: %v", room, err)
		h.deliver(notice)
	}
}

// deliver fans a notice out to every current member of its room.
func (h *Hub) deliver(notice models.Notice) {
	h.broadcast(notice.Room, notice, "")
}

// broadcast sends a notice to every member of a room except the excluded
// connection. An empty room is a no-op. A member whose send buffer is
// full is dropped rather than blocking the dispatcher.
func (h *Hub) broadcast(room string, notice models.Notice, exclude string) {
	for _, id := range h.Roster.Members(room) {
		if id == exclude {
			continue
		}
		client, ok := h.Clients[id]
		if !ok {
			// Stale membership; the roster is authoritative only for
			// connections the hub still knows.
			h.Roster.DropAll(id)
			continue
		}
		select {
		case client.GetSendChannel() <- notice:
		default:
			log.Printf("WARNING: Dropping slow client %s", id)
			h.removeClient(client)
		}
	}
}

// removeClient forgets a connection entirely: client table, every room
// membership, and its send channel.
func (h *Hub) removeClient(client Client) {
	id := client.GetClientID()
	if _, ok := h.Clients[id]; !ok {
		return
	}
	delete(h.Clients, id)
	h.Roster.DropAll(id)
	client.Close()
}

// detectLanguage tags the message body for the persisted log. Unreliable
// detections (short or mixed text) fall back to "en".
func detectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return "en"
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "en"
	}
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return "en"
}
