package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"agrismart/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("storage: not found")

// Storage is everything the handlers and the chat hub need from the
// persistence layer. *Service implements it over PostgreSQL and Redis.
type Storage interface {
	// Users
	CreateUser(user *models.User) error
	UserByEmail(email string) (*models.User, error)
	UserByID(id uint) (*models.User, error)
	UpsertGoogleUser(googleID, email, name string) (*models.User, error)
	UserDisplayInfo(userID uint) (name, avatar string, err error)

	// Chat message log (append-only)
	SaveChatMessage(msg *models.ChatMessage) error
	PublishNotice(room string, notice models.Notice) error
	ChatHistory(room string, limit int) ([]models.ChatMessage, error)

	// Marketplace
	ListProducts(category, search string) ([]ProductListing, error)
	CreateProduct(product *models.Product) error

	// Knowledge base
	ListTips(category, language string) ([]TipListing, error)
	ListSchemes(category, state string) ([]models.Scheme, error)

	// Forum
	ListForumPosts(category string) ([]ForumPostListing, error)
	CreateForumPost(post *models.ForumPost) error

	// Detections and AI assistant
	SaveDetection(detection *models.DiseaseDetection) error
	SaveAIChatEntry(entry *models.AIChatEntry) error

	// Dashboard
	DashboardStats(userID uint) (*DashboardStats, error)
}

// Service is the PostgreSQL + Redis backed implementation of Storage.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewService constructs the storage service. rdb may be nil for CLI tools
// that only touch the database (e.g. the seeder).
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// chatChannelPrefix namespaces the Redis pub/sub topics used for room
// fan-out, one topic per room.
const chatChannelPrefix = "chat:room:"

// ChatChannel returns the Redis pub/sub topic for a room.
func ChatChannel(room string) string {
	return chatChannelPrefix + room
}

// CreateUser inserts a new account row.
func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

// UserByEmail finds an account by email, ErrNotFound when absent.
func (s *Service) UserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByID finds an account by primary key, ErrNotFound when absent.
func (s *Service) UserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertGoogleUser finds the account matching a Google sign-in, creating a
// verified one on first contact.
func (s *Service) UpsertGoogleUser(googleID, email, name string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("google_id = ? OR email = ?", googleID, email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Name:       name,
		Email:      email,
		GoogleID:   googleID,
		IsVerified: true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		log.Printf("ERROR: Failed to create user for Google ID %s: %v", googleID, err)
		return nil, err
	}
	return &user, nil
}

// UserDisplayInfo returns the name and avatar shown next to chat messages.
// A missing user yields ErrNotFound; callers decide the fallback.
func (s *Service) UserDisplayInfo(userID uint) (string, string, error) {
	var row struct {
		Name         string
		ProfileImage string
	}
	err := s.DB.Model(&models.User{}).
		Select("name", "profile_image").
		Where("id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", err
	}
	return row.Name, row.ProfileImage, nil
}

// SaveChatMessage appends one row to the chat log. The row's ID and
// CreatedAt are filled in by gorm on success.
func (s *Service) SaveChatMessage(msg *models.ChatMessage) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save chat message for room %s: %v", msg.Room, err)
		return err
	}
	return nil
}

// PublishNotice serializes a notice and publishes it on the room's
// pub/sub topic so every server instance can fan it out locally.
func (s *Service) PublishNotice(room string, notice models.Notice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, ChatChannel(room), payload).Err()
}

// SubscribeChat pattern-subscribes to every room topic. Used by the hub's
// pub/sub bridge; intentionally not part of the Storage interface so the
// hub stays testable without a live Redis.
func (s *Service) SubscribeChat() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, chatChannelPrefix+"*")
}

// ChatHistory returns the most recent messages of a room in send order.
func (s *Service) ChatHistory(room string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var messages []models.ChatMessage
	err := s.DB.Where("room = ?", room).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
