package complaint_test

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

func (m *MockStore) CreateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStore) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStore) ListComplaints() ([]models.Complaint, error) {
	args := m.Called()
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) ListComplaintsByUser(userID uint) ([]models.Complaint, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) TrackComplaint(email, code string) (*models.Complaint, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStore) BindPersonnel(complaintID, personnelID uint) error {
	args := m.Called(complaintID, personnelID)
	return args.Error(0)
}

func (m *MockStore) UpdateComplaintStatus(complaintID uint, status string) error {
	args := m.Called(complaintID, status)
	return args.Error(0)
}

func (m *MockStore) GetComplaintTypeByName(name string) (*models.ComplaintType, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComplaintType), args.Error(1)
}

func (m *MockStore) ListComplaintTypes() ([]models.ComplaintType, error) {
	args := m.Called()
	return args.Get(0).([]models.ComplaintType), args.Error(1)
}

func (m *MockStore) FindPersonnel(name, contact string) (*models.Personnel, error) {
	args := m.Called(name, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Personnel), args.Error(1)
}

func (m *MockStore) ClaimPersonnel(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) ReleasePersonnel(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) GetFeedbackByComplaint(complaintID uint) (*models.Feedback, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockStore) CreateFeedback(fb *models.Feedback) error {
	args := m.Called(fb)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) TicketSubmitted(email, name, complaintType, code string) {
	m.Called(email, name, complaintType, code)
}

func (m *MockNotifier) PersonnelAssigned(email, name, complaintType, personnelName, personnelContact string) {
	m.Called(email, name, complaintType, personnelName, personnelContact)
}

func (m *MockNotifier) TicketResolved(email, name, complaintType string) {
	m.Called(email, name, complaintType)
}
