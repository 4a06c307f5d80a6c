package storage

import (
	"errors"
	"log"

	"helpdesk/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *Service) UpdateUserPassword(email, passwordHash string) error {
	return s.DB.Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

// ListOnboardedUsersExcluding returns every onboarded user whose id is not in
// ids. Used for friend recommendations: ids carries the requesting user plus
// their existing friends.
func (s *Service) ListOnboardedUsersExcluding(ids []uint) ([]models.User, error) {
	var users []models.User
	q := s.DB.Where("is_onboarded = ?", true)
	if len(ids) > 0 {
		q = q.Where("id NOT IN ?", ids)
	}
	if err := q.Find(&users).Error; err != nil {
		log.Printf("ERROR: failed to list recommended users: %v", err)
		return nil, err
	}
	return users, nil
}

func (s *Service) GetFriends(userID uint) ([]models.User, error) {
	user := models.User{Model: gorm.Model{ID: userID}}
	var friends []models.User
	if err := s.DB.Model(&user).Association("Friends").Find(&friends); err != nil {
		log.Printf("ERROR: failed to load friends for user %d: %v", userID, err)
		return nil, err
	}
	return friends, nil
}

func (s *Service) AreFriends(userID, otherID uint) (bool, error) {
	var count int64
	err := s.DB.Table("user_friends").
		Where("user_id = ? AND friend_id = ?", userID, otherID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddFriendship inserts the symmetric edge in both directions inside one
// transaction so a half-written friendship can never be observed.
func (s *Service) AddFriendship(userID, otherID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		a := models.User{Model: gorm.Model{ID: userID}}
		b := models.User{Model: gorm.Model{ID: otherID}}
		if err := tx.Model(&a).Association("Friends").Append(&b); err != nil {
			return err
		}
		return tx.Model(&b).Association("Friends").Append(&a)
	})
}
