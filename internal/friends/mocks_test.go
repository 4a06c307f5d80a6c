package friends_test

import (
	"helpdesk/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetFriends(userID uint) ([]models.User, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) AreFriends(userID, otherID uint) (bool, error) {
	args := m.Called(userID, otherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) AddFriendship(userID, otherID uint) error {
	args := m.Called(userID, otherID)
	return args.Error(0)
}

func (m *MockStore) CreateFriendRequest(req *models.FriendRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockStore) GetFriendRequestByID(id uint) (*models.FriendRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FriendRequest), args.Error(1)
}

func (m *MockStore) FindRequestBetween(userID, otherID uint) (*models.FriendRequest, error) {
	args := m.Called(userID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FriendRequest), args.Error(1)
}

func (m *MockStore) UpdateFriendRequest(req *models.FriendRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockStore) ListRequestsForRecipient(userID uint, status string) ([]models.FriendRequest, error) {
	args := m.Called(userID, status)
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

func (m *MockStore) ListOnboardedUsersExcluding(ids []uint) ([]models.User, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.User), args.Error(1)
}
