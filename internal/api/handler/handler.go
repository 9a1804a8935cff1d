// Package handler exposes the HTTP and WebSocket surface of the backend.
package handler

import (
	"net/http"

	"agrismart/backend/internal/ai"
	"agrismart/backend/internal/auth"
	"agrismart/backend/internal/chathub"
	"agrismart/backend/internal/config"
	"agrismart/backend/internal/storage"
	"agrismart/backend/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Handler bundles the dependencies shared by all routes.
type Handler struct {
	Hub       *chathub.Hub
	Store     storage.Storage
	Tokens    *auth.TokenManager
	Redis     *redis.Client
	Weather   *weather.Client
	Assistant *ai.AssistantClient
	Speech    *ai.SpeechClient
	Cfg       *config.Config
}

// New constructs the handler set.
func New(hub *chathub.Hub, store storage.Storage, tokens *auth.TokenManager,
	rdb *redis.Client, wc *weather.Client, assistant *ai.AssistantClient,
	speech *ai.SpeechClient, cfg *config.Config) *Handler {
	return &Handler{
		Hub:       hub,
		Store:     store,
		Tokens:    tokens,
		Redis:     rdb,
		Weather:   wc,
		Assistant: assistant,
		Speech:    speech,
		Cfg:       cfg,
	}
}

// RegisterRoutes attaches every route to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/api/health", h.Health)

	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/google", h.GoogleAuth)

	r.GET("/api/products", h.ListProducts)
	r.GET("/api/tips", h.ListTips)
	r.GET("/api/schemes", h.ListSchemes)
	r.GET("/api/forum/posts", h.ListForumPosts)
	r.GET("/api/chat/history", h.ChatHistory)
	r.POST("/api/ai/speak", h.Speak)

	r.GET("/ws", h.ServeWebSocket)

	authed := r.Group("/", h.RequireAuth())
	{
		authed.GET("/api/user/profile", h.Profile)
		authed.GET("/api/weather", h.GetWeather)
		authed.POST("/api/disease/detect", h.DetectDisease)
		authed.POST("/api/products", h.CreateProduct)
		authed.POST("/api/forum/posts", h.CreateForumPost)
		authed.POST("/api/ai/chat", h.AIChat)
		authed.GET("/api/dashboard/stats", h.DashboardStats)
	}
}

// Home confirms the service is up.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AgriSmart backend is running"})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "AgriSmart API"})
}
