package handler

import (
	"net/http"
	"strings"

	"agrismart/backend/internal/chathub"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The mobile and web clients connect from app origins; tighten this
	// when the deployment domains are fixed.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket authenticates and upgrades a chat connection, then
// registers it with the hub. Browsers cannot set headers on WebSocket
// requests, so the token is also accepted as a query parameter.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	userID, err := h.Tokens.Parse(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := chathub.NewWebSocketClient(uuid.NewString(), userID, conn, h.Hub)
	h.Hub.RegisterCh <- client
	client.Run()
}
