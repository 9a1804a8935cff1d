package handler

import (
	"log"
	"net/http"
	"path/filepath"

	"agrismart/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type mockDisease struct {
	Name       string
	Confidence float64
	Treatment  string
	Prevention string
}

// The detector is a placeholder until a real model is hooked up: results
// are drawn from this fixed set.
var mockDiseases = []mockDisease{
	{
		Name:       "Leaf Blight",
		Confidence: 0.92,
		Treatment:  "Apply copper-based fungicide",
		Prevention: "Ensure proper drainage and spacing",
	},
	{
		Name:       "Powdery Mildew",
		Confidence: 0.87,
		Treatment:  "Use sulfur-based spray",
		Prevention: "Reduce humidity, improve air circulation",
	},
	{
		Name:       "Bacterial Spot",
		Confidence: 0.78,
		Treatment:  "Remove infected leaves, apply bactericide",
		Prevention: "Use disease-free seeds",
	},
}

// DetectDisease stores the uploaded crop photo, runs the (mock) detector
// and records the result.
func (h *Handler) DetectDisease(c *gin.Context) {
	userID := currentUserID(c)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dest := filepath.Join(h.Cfg.UploadDir, "crops", filename)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		log.Printf("ERROR: Failed to store crop upload for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	detected := lo.Sample(mockDiseases)

	detection := models.DiseaseDetection{
		UserID:             userID,
		DiseaseName:        detected.Name,
		Confidence:         detected.Confidence,
		Image:              filename,
		Treatment:          detected.Treatment,
		PreventiveMeasures: detected.Prevention,
	}
	if err := h.Store.SaveDetection(&detection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save detection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                  detection.ID,
		"disease":             detected.Name,
		"confidence":          detected.Confidence,
		"treatment":           detected.Treatment,
		"preventive_measures": detected.Prevention,
		"image":               filename,
	})
}
