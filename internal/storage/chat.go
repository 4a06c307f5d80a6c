package storage

import (
	"encoding/json"
	"fmt"
	"log"

	"helpdesk/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const chatChannelPrefix = "chat:conversation:"

// ChatChannel is the redis pub/sub channel for one conversation.
func ChatChannel(userID uint) string {
	return fmt.Sprintf("%s%d", chatChannelPrefix, userID)
}

func (s *Service) SaveChatMessage(msg *models.ChatMessage) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: failed to save chat message for user %d: %v", msg.UserID, err)
		return err
	}
	return nil
}

// GetChatHistory returns the newest messages of a conversation, oldest
// first. The query walks backwards from the tail and the result is reversed
// so clients can render it top to bottom.
func (s *Service) GetChatHistory(userID uint, limit int) ([]models.ChatMessage, error) {
	var history []models.ChatMessage
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// ListChatUserIDs returns the distinct conversation owners, for the admin
// inbox view.
func (s *Service) ListChatUserIDs() ([]uint, error) {
	var ids []uint
	err := s.DB.Model(&models.ChatMessage{}).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// PublishChatEvent pushes a "row appended" notification to the
// conversation's channel. Live push is best-effort; the persisted row is the
// source of truth.
func (s *Service) PublishChatEvent(userID uint, ev models.ChatEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, ChatChannel(userID), payload).Err()
}

// SubscribeChatEvents subscribes to every conversation channel.
func (s *Service) SubscribeChatEvents() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, chatChannelPrefix+"*")
}
