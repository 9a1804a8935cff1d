package chathub

import (
	"encoding/json"
	"log"
	"time"

	"agrismart/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// sendBuffer sizes the per-client outbound queue; a client that falls
	// this far behind is dropped by the hub.
	sendBuffer = 256
)

// WebSocketClient implements Client over a gorilla/websocket connection.
type WebSocketClient struct {
	ClientID string
	UserID   uint
	Conn     *websocket.Conn
	Hub      *Hub
	SendCh   chan models.Notice
}

// NewWebSocketClient builds a hub client around an upgraded connection.
// userID comes from the validated access token, not from the wire.
func NewWebSocketClient(clientID string, userID uint, conn *websocket.Conn, hub *Hub) *WebSocketClient {
	return &WebSocketClient{
		ClientID: clientID,
		UserID:   userID,
		Conn:     conn,
		Hub:      hub,
		SendCh:   make(chan models.Notice, sendBuffer),
	}
}

func (c *WebSocketClient) GetClientID() string { return c.ClientID }
func (c *WebSocketClient) GetSendChannel() chan<- models.Notice { return c.SendCh }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close shuts the send channel, which stops the write pump. The read
// pump stops on its own once the connection is closed.
func (c *WebSocketClient) Close() {
	close(c.SendCh)
}

// readPump decodes inbound frames into events and hands them to the hub.
// A disconnect, abrupt or not, ends with the client unregistered.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading from client %s: %v", c.ClientID, err)
			}
			break
		}

		var evt models.Event
		if err := json.Unmarshal(payload, &evt); err != nil {
			log.Printf("Error decoding event from client %s: %v", c.ClientID, err)
			continue
		}

		// Stamp trusted identity; the wire values are not authoritative.
		evt.ClientID = c.ClientID
		if evt.UserID == 0 {
			evt.UserID = c.UserID
		}

		c.Hub.IncomingCh <- evt
	}
}

// writePump drains the send channel to the socket and keeps the
// connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case notice, ok := <-c.SendCh:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(notice); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
