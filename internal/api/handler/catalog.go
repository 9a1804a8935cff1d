package handler

import (
	"net/http"

	"agrismart/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// ListProducts returns active marketplace listings, optionally filtered.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Query("category"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity"`
	IsOrganic   bool    `json:"is_organic"`
	Image       string  `json:"image"`
}

// CreateProduct lists a new product for the authenticated seller.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, category, and price are required"})
		return
	}

	product := models.Product{
		SellerID:    currentUserID(c),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Unit:        defaultString(req.Unit, "kg"),
		Quantity:    req.Quantity,
		IsOrganic:   req.IsOrganic,
		Image:       req.Image,
		Status:      "active",
	}
	if err := h.Store.CreateProduct(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": product.ID, "message": "Product created successfully"})
}

// ListTips returns knowledge-base articles filtered by category/language.
func (h *Handler) ListTips(c *gin.Context) {
	tips, err := h.Store.ListTips(c.Query("category"), c.DefaultQuery("language", "en"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tips"})
		return
	}
	c.JSON(http.StatusOK, tips)
}

// ListSchemes returns active government schemes, optionally by state.
func (h *Handler) ListSchemes(c *gin.Context) {
	schemes, err := h.Store.ListSchemes(c.Query("category"), c.Query("state"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schemes"})
		return
	}
	c.JSON(http.StatusOK, schemes)
}

// ListForumPosts returns community threads with author data and counts.
func (h *Handler) ListForumPosts(c *gin.Context) {
	posts, err := h.Store.ListForumPosts(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

type createPostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// CreateForumPost opens a new discussion thread.
func (h *Handler) CreateForumPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	post := models.ForumPost{
		UserID:   currentUserID(c),
		Title:    req.Title,
		Content:  req.Content,
		Category: defaultString(req.Category, "general"),
		Tags:     pq.StringArray(req.Tags),
	}
	if err := h.Store.CreateForumPost(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": post.ID, "message": "Post created successfully"})
}

// ChatHistory returns the persisted message log of a room, oldest first.
func (h *Handler) ChatHistory(c *gin.Context) {
	room := c.DefaultQuery("room", models.DefaultRoom)
	messages, err := h.Store.ChatHistory(room, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, messages)
}
