package handler_test

import (
	"agrismart/backend/internal/models"
	"agrismart/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) UserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) UserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) UpsertGoogleUser(googleID, email, name string) (*models.User, error) {
	args := m.Called(googleID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) UserDisplayInfo(userID uint) (string, string, error) {
	args := m.Called(userID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) SaveChatMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) PublishNotice(room string, notice models.Notice) error {
	args := m.Called(room, notice)
	return args.Error(0)
}

func (m *MockStorage) ChatHistory(room string, limit int) ([]models.ChatMessage, error) {
	args := m.Called(room, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockStorage) ListProducts(category, search string) ([]storage.ProductListing, error) {
	args := m.Called(category, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProductListing), args.Error(1)
}

func (m *MockStorage) CreateProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockStorage) ListTips(category, language string) ([]storage.TipListing, error) {
	args := m.Called(category, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.TipListing), args.Error(1)
}

func (m *MockStorage) ListSchemes(category, state string) ([]models.Scheme, error) {
	args := m.Called(category, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Scheme), args.Error(1)
}

func (m *MockStorage) ListForumPosts(category string) ([]storage.ForumPostListing, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ForumPostListing), args.Error(1)
}

func (m *MockStorage) CreateForumPost(post *models.ForumPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockStorage) SaveDetection(detection *models.DiseaseDetection) error {
	args := m.Called(detection)
	return args.Error(0)
}

func (m *MockStorage) SaveAIChatEntry(entry *models.AIChatEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockStorage) DashboardStats(userID uint) (*storage.DashboardStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.DashboardStats), args.Error(1)
}
