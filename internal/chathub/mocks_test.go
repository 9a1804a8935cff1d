package chathub_test

import (
	"agrismart/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of the chathub.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveChatMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStore) PublishNotice(room string, notice models.Notice) error {
	args := m.Called(room, notice)
	return args.Error(0)
}

func (m *MockStore) UserDisplayInfo(userID uint) (string, string, error) {
	args := m.Called(userID)
	return args.String(0), args.String(1), args.Error(2)
}

// mockClient is a test double for the chathub.Client interface that
// records what the hub sends it.
type mockClient struct {
	id     string
	recv   chan models.Notice
	closed bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:   id,
		recv: make(chan models.Notice, 16), // buffered to prevent blocking in tests
	}
}

func (c *mockClient) GetClientID() string                  { return c.id }
func (c *mockClient) GetSendChannel() chan<- models.Notice { return c.recv }
func (c *mockClient) Run()                                 {}
func (c *mockClient) Close()                               { c.closed = true }
