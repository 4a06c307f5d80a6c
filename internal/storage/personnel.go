package storage

import (
	"errors"
	"log"

	"helpdesk/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreatePersonnel(p *models.Personnel) error {
	p.Available = true
	return s.DB.Create(p).Error
}

func (s *Service) ListPersonnel() ([]models.Personnel, error) {
	var personnel []models.Personnel
	if err := s.DB.Order("name").Find(&personnel).Error; err != nil {
		return nil, err
	}
	return personnel, nil
}

func (s *Service) FindPersonnel(name, contact string) (*models.Personnel, error) {
	var p models.Personnel
	err := s.DB.Where("name = ? AND contact = ?", name, contact).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ClaimPersonnel flips the availability flag to false only if it is
// currently true. The conditional update makes the claim atomic: of two
// concurrent assignments against the same person, exactly one sees a row
// affected.
func (s *Service) ClaimPersonnel(id uint) (bool, error) {
	res := s.DB.Model(&models.Personnel{}).
		Where("id = ? AND available = ?", id, true).
		Update("available", false)
	if res.Error != nil {
		log.Printf("ERROR: failed to claim personnel %d: %v", id, res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Service) ReleasePersonnel(id uint) error {
	return s.DB.Model(&models.Personnel{}).
		Where("id = ?", id).
		Update("available", true).Error
}
