package storage

import (
	"log"

	"agrismart/backend/internal/models"
)

// ProductListing is a product row joined with its seller's name.
type ProductListing struct {
	models.Product
	SellerName string `json:"seller_name"`
}

// TipListing is a farming tip joined with its author's name, when any.
type TipListing struct {
	models.FarmingTip
	AuthorName string `json:"author_name"`
}

// ForumPostListing is a forum post joined with author display data and
// its comment count.
type ForumPostListing struct {
	models.ForumPost
	AuthorName    string `json:"author_name"`
	AuthorRole    string `json:"role"`
	AuthorImage   string `json:"profile_image"`
	CommentsCount int64  `json:"comments_count"`
}

// DashboardStats are the per-user counters shown on the dashboard.
type DashboardStats struct {
	DiseaseScans    int64 `json:"disease_scans"`
	IrrigationPlans int64 `json:"irrigation_plans"`
	ProductsListed  int64 `json:"products_listed"`
	AIChats         int64 `json:"ai_chats"`
}

// ListProducts returns up to 50 active listings, newest first, optionally
// narrowed by category and a name/description substring search.
func (s *Service) ListProducts(category, search string) ([]ProductListing, error) {
	q := s.DB.Model(&models.Product{}).
		Select("products.*, users.name AS seller_name").
		Joins("JOIN users ON users.id = products.seller_id").
		Where("products.status = ?", "active")

	if category != "" {
		q = q.Where("products.category = ?", category)
	}
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}

	var listings []ProductListing
	if err := q.Order("products.created_at DESC").Limit(50).Scan(&listings).Error; err != nil {
		log.Printf("ERROR: Failed to list products: %v", err)
		return nil, err
	}
	return listings, nil
}

// CreateProduct inserts a new marketplace listing.
func (s *Service) CreateProduct(product *models.Product) error {
	return s.DB.Create(product).Error
}

// ListTips returns up to 30 tips, newest first, optionally narrowed by
// category and language.
func (s *Service) ListTips(category, language string) ([]TipListing, error) {
	q := s.DB.Model(&models.FarmingTip{}).
		Select("farming_tips.*, users.name AS author_name").
		Joins("LEFT JOIN users ON users.id = farming_tips.author_id")

	if category != "" {
		q = q.Where("farming_tips.category = ?", category)
	}
	if language != "" {
		q = q.Where("farming_tips.language = ?", language)
	}

	var tips []TipListing
	if err := q.Order("farming_tips.created_at DESC").Limit(30).Scan(&tips).Error; err != nil {
		log.Printf("ERROR: Failed to list tips: %v", err)
		return nil, err
	}
	return tips, nil
}

// ListSchemes returns active government schemes, newest first. A state
// filter also matches nationwide ("All") schemes.
func (s *Service) ListSchemes(category, state string) ([]models.Scheme, error) {
	q := s.DB.Where("is_active = ?", true)

	if category != "" {
		q = q.Where("category = ?", category)
	}
	if state != "" {
		q = q.Where("state = ? OR state = ?", state, "All")
	}

	var schemes []models.Scheme
	if err := q.Order("created_at DESC").Find(&schemes).Error; err != nil {
		log.Printf("ERROR: Failed to list schemes: %v", err)
		return nil, err
	}
	return schemes, nil
}

// ListForumPosts returns up to 30 posts with author data and comment
// counts, pinned threads first.
func (s *Service) ListForumPosts(category string) ([]ForumPostListing, error) {
	q := s.DB.Model(&models.ForumPost{}).
		Select("forum_posts.*, users.name AS author_name, users.role AS author_role, " +
			"users.profile_image AS author_image, COUNT(DISTINCT forum_comments.id) AS comments_count").
		Joins("JOIN users ON users.id = forum_posts.user_id").
		Joins("LEFT JOIN forum_comments ON forum_comments.post_id = forum_posts.id")

	if category != "" {
		q = q.Where("forum_posts.category = ?", category)
	}

	var posts []ForumPostListing
	err := q.Group("forum_posts.id, users.id").
		Order("forum_posts.is_pinned DESC, forum_posts.created_at DESC").
		Limit(30).
		Scan(&posts).Error
	if err != nil {
		log.Printf("ERROR: Failed to list forum posts: %v", err)
		return nil, err
	}
	return posts, nil
}

// CreateForumPost inserts a new discussion thread.
func (s *Service) CreateForumPost(post *models.ForumPost) error {
	return s.DB.Create(post).Error
}

// SaveDetection records a disease scan result.
func (s *Service) SaveDetection(detection *models.DiseaseDetection) error {
	return s.DB.Create(detection).Error
}

// SaveAIChatEntry records one assistant exchange.
func (s *Service) SaveAIChatEntry(entry *models.AIChatEntry) error {
	return s.DB.Create(entry).Error
}

// DashboardStats counts the user's activity across features.
func (s *Service) DashboardStats(userID uint) (*DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		model any
		dest  *int64
		col   string
	}{
		{&models.DiseaseDetection{}, &stats.DiseaseScans, "user_id"},
		{&models.IrrigationPlan{}, &stats.IrrigationPlans, "user_id"},
		{&models.Product{}, &stats.ProductsListed, "seller_id"},
		{&models.AIChatEntry{}, &stats.AIChats, "user_id"},
	}
	for _, c := range counts {
		if err := s.DB.Model(c.model).Where(c.col+" = ?", userID).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
