package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"agrismart/backend/internal/config"

	"github.com/gin-gonic/gin"
)

// GetWeather proxies OpenWeatherMap with a Redis cache in front. When the
// upstream is unreachable the client gets plausible mock data instead of
// an error, so the dashboard keeps rendering offline.
func (h *Handler) GetWeather(c *gin.Context) {
	location := c.DefaultQuery("location", "Delhi")
	cacheKey := "weather:" + location

	if h.Redis != nil {
		if cached, err := h.Redis.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	snapshot, err := h.Weather.Snapshot(c.Request.Context(), location)
	if err != nil {
		log.Printf("WARNING: Weather upstream failed for %s: %v", location, err)
		c.JSON(http.StatusOK, mockWeather())
		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode weather"})
		return
	}

	if h.Redis != nil {
		if err := h.Redis.Set(c.Request.Context(), cacheKey, payload, config.WeatherCacheTTL).Err(); err != nil {
			log.Printf("WARNING: Failed to cache weather for %s: %v", location, err)
		}
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func mockWeather() gin.H {
	return gin.H{
		"current": gin.H{
			"temp":       28,
			"feels_like": 30,
			"humidity":   65,
			"weather":    []gin.H{{"main": "Clear", "description": "clear sky"}},
			"wind":       gin.H{"speed": 3.5},
		},
		"forecast": gin.H{"list": []any{}},
	}
}
