package chathub_test

import (
	"helpdesk/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveChatMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) PublishChatEvent(userID uint, ev models.ChatEvent) error {
	args := m.Called(userID, ev)
	return args.Error(0)
}

type MockClient struct {
	userID         uint
	conversationID uint
	RecvChannel    chan models.ChatEvent
	closed         bool
}

func newMockClient(userID, conversationID uint) *MockClient {
	return &MockClient{
		userID:         userID,
		conversationID: conversationID,
		RecvChannel:    make(chan models.ChatEvent, 10),
	}
}

func (c *MockClient) GetUserID() uint         { return c.userID }
func (c *MockClient) GetConversationID() uint { return c.conversationID }

func (c *MockClient) GetSendChannel() chan<- models.ChatEvent {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}
