package storage

import (
	"errors"
	"log"

	"helpdesk/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.ComplaintPending
	}
	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: failed to save complaint for user %d: %v", complaint.UserID, err)
		return err
	}
	return nil
}

func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.
		Preload("User").
		Preload("ComplaintType").
		Preload("AssignedPersonnel").
		First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (s *Service) ListComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.
		Preload("User").
		Preload("ComplaintType").
		Preload("AssignedPersonnel").
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Service) ListComplaintsByUser(userID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.
		Preload("ComplaintType").
		Preload("AssignedPersonnel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// TrackComplaint resolves the (owner email, code) pair to a complaint.
// Codes are only four digits and may collide across tickets of the same
// owner; the newest match wins.
func (s *Service) TrackComplaint(email, code string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.
		Joins("JOIN users ON users.id = complaints.user_id").
		Where("users.email = ? AND complaints.code = ?", email, code).
		Order("complaints.created_at DESC").
		Preload("AssignedPersonnel").
		First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// BindPersonnel sets the assigned personnel and moves the complaint to
// Assigned in a single update.
func (s *Service) BindPersonnel(complaintID, personnelID uint) error {
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", complaintID).
		Updates(map[string]interface{}{
			"assigned_personnel_id": personnelID,
			"status":                models.ComplaintAssigned,
		}).Error
}

func (s *Service) UpdateComplaintStatus(complaintID uint, status string) error {
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", complaintID).
		Update("status", status).Error
}

func (s *Service) GetComplaintTypeByName(name string) (*models.ComplaintType, error) {
	var ct models.ComplaintType
	err := s.DB.Where("type_name = ?", name).First(&ct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (s *Service) ListComplaintTypes() ([]models.ComplaintType, error) {
	var types []models.ComplaintType
	if err := s.DB.Order("type_name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// SeedComplaintTypes inserts the given categories, skipping ones that
// already exist. Safe to run on every startup.
func (s *Service) SeedComplaintTypes(names []string) error {
	for _, name := range names {
		ct := models.ComplaintType{TypeName: name}
		err := s.DB.Where("type_name = ?", name).FirstOrCreate(&ct).Error
		if err != nil {
			return err
		}
	}
	return nil
}
