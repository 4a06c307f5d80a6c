package storage

import (
	"errors"

	"helpdesk/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreateFriendRequest(req *models.FriendRequest) error {
	return s.DB.Create(req).Error
}

func (s *Service) GetFriendRequestByID(id uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := s.DB.First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindRequestBetween looks for a request between two users in either
// direction, any status.
func (s *Service) FindRequestBetween(userID, otherID uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := s.DB.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Service) UpdateFriendRequest(req *models.FriendRequest) error {
	return s.DB.Save(req).Error
}

func (s *Service) ListRequestsForRecipient(userID uint, status string) ([]models.FriendRequest, error) {
	var reqs []models.FriendRequest
	err := s.DB.Preload("Sender").
		Where("recipient_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}
