package handler

import (
	"encoding/base64"
	"log"
	"net/http"
	"strings"

	"agrismart/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const assistantSystemPrompt = `You are Ayushmann, an expert AI farming assistant for the AgriSmart platform.
You provide helpful, accurate information about agriculture, farming practices, crop management, soil health, irrigation, pest control, and related topics.
Always respond in a helpful, professional manner. If asked about non-farming topics, politely redirect to farming-related advice.
Keep responses concise but informative. Use simple language that farmers can understand.`

// Canned answers served when the completion API is unavailable.
var fallbackAnswers = map[string][]string{
	"en": {
		"Based on your query, I recommend using organic fertilizers for better soil health.",
		"For this season, consider planting wheat or mustard depending on your soil type.",
		"Regular irrigation is crucial. I suggest drip irrigation for water efficiency.",
		"Monitor your crops for pest attacks. Use neem-based pesticides for organic farming.",
	},
	"hi": {
		"आपके प्रश्न के आधार पर, मैं बेहतर मिट्टी स्वास्थ्य के लिए जैविक उर्वरकों का उपयोग करने की सलाह देता हूं।",
		"इस मौसम के लिए, अपनी मिट्टी के प्रकार के आधार पर गेहूं या सरसों लगाने पर विचार करें।",
		"नियमित सिंचाई महत्वपूर्ण है। मैं पानी की दक्षता के लिए ड्रिप सिंचाई का सुझाव देता हूं।",
	},
}

type aiChatRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

// AIChat answers a farming question via the completion API, falling back
// to canned advice when the upstream is down, and records the exchange.
func (h *Handler) AIChat(c *gin.Context) {
	userID := currentUserID(c)

	var req aiChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}
	language := defaultString(req.Language, "en")

	prompt := assistantSystemPrompt
	if language == "hi" {
		prompt += " Respond in Hindi language."
	}

	answer, err := h.Assistant.Complete(c.Request.Context(), prompt, req.Question)
	if err != nil {
		log.Printf("WARNING: Completion API failed: %v", err)
		choices, ok := fallbackAnswers[language]
		if !ok {
			choices = fallbackAnswers["en"]
		}
		answer = lo.Sample(choices)
	}

	entry := models.AIChatEntry{
		UserID:   userID,
		Question: req.Question,
		Answer:   answer,
		Language: language,
	}
	if err := h.Store.SaveAIChatEntry(&entry); err != nil {
		log.Printf("ERROR: Failed to save AI chat entry for user %d: %v", userID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"question": req.Question,
		"answer":   answer,
		"language": language,
	})
}

type speakRequest struct {
	Text string `json:"text"`
}

// Speak converts text to speech and returns the audio base64-encoded.
func (h *Handler) Speak(c *gin.Context) {
	var req speakRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	if h.Cfg.ElevenLabsAPIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Speech service not configured"})
		return
	}

	audio, err := h.Speech.Synthesize(c.Request.Context(), strings.TrimSpace(req.Text))
	if err != nil {
		log.Printf("ERROR: Speech synthesis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Speech synthesis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"audio": base64.StdEncoding.EncodeToString(audio)})
}

// DashboardStats returns the caller's activity counters.
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.Store.DashboardStats(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
