package handler

import (
	"errors"
	"log"
	"net/http"

	"agrismart/backend/internal/auth"
	"agrismart/backend/internal/models"
	"agrismart/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role"`
	Language string  `json:"language"`
	Location string  `json:"location"`
	FarmSize float64 `json:"farm_size"`
}

// Register creates an account and returns an access token.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required"})
		return
	}

	if _, err := h.Store.UserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Phone:    req.Phone,
		Role:     defaultString(req.Role, "farmer"),
		Language: defaultString(req.Language, "en"),
		Location: req.Location,
		FarmSize: req.FarmSize,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration successful",
		"access_token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and returns an access token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.Store.UserByEmail(req.Email)
	if err != nil || !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"user": gin.H{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"role":          user.Role,
			"language":      user.Language,
			"profile_image": user.ProfileImage,
		},
	})
}

type googleAuthRequest struct {
	GoogleID string `json:"google_id" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
}

// GoogleAuth signs a user in via Google identity, creating the account
// on first contact.
func (h *Handler) GoogleAuth(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google authentication"})
		return
	}

	user, err := h.Store.UpsertGoogleUser(req.GoogleID, req.Email, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Authentication successful",
		"access_token": token,
		"user":         gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// Profile returns the authenticated user's account data.
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.Store.UserByID(currentUserID(c))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"phone":         user.Phone,
		"role":          user.Role,
		"language":      user.Language,
		"location":      user.Location,
		"farm_size":     user.FarmSize,
		"profile_image": user.ProfileImage,
	})
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
