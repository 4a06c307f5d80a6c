package storage

import (
	"errors"

	"helpdesk/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) GetFeedbackByComplaint(complaintID uint) (*models.Feedback, error) {
	var fb models.Feedback
	err := s.DB.Where("complaint_id = ?", complaintID).First(&fb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

// CreateFeedback inserts the feedback row and flips the complaint's
// feedback_given flag in the same transaction.
func (s *Service) CreateFeedback(fb *models.Feedback) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fb).Error; err != nil {
			return err
		}
		return tx.Model(&models.Complaint{}).
			Where("id = ?", fb.ComplaintID).
			Update("feedback_given", true).Error
	})
}
