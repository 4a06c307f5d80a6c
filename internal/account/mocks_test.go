package account_test

import (
	"time"

	"helpdesk/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStore) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStore) UpdateUserPassword(email, passwordHash string) error {
	args := m.Called(email, passwordHash)
	return args.Error(0)
}

func (m *MockStore) SaveResetToken(tokenHash, email string, ttl time.Duration) error {
	args := m.Called(tokenHash, email, ttl)
	return args.Error(0)
}

func (m *MockStore) GetResetEmail(tokenHash string) (string, error) {
	args := m.Called(tokenHash)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeleteResetToken(tokenHash string) error {
	args := m.Called(tokenHash)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PasswordReset(email, name, resetLink string) {
	m.Called(email, name, resetLink)
}
