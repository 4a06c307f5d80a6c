package storage

import (
	"context"
	"time"

	"helpdesk/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the full persistence surface. PostgreSQL (through gorm) holds
// the durable entities; redis carries the chat pub/sub channel and expiring
// password-reset entries. Lookup methods return (nil, nil) when the row does
// not exist; callers translate that into their own error taxonomy.
type Storage interface {
	// Users
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	UpdateUserPassword(email, passwordHash string) error
	ListOnboardedUsersExcluding(ids []uint) ([]models.User, error)

	// Friendships
	GetFriends(userID uint) ([]models.User, error)
	AreFriends(userID, otherID uint) (bool, error)
	AddFriendship(userID, otherID uint) error

	// Friend requests
	CreateFriendRequest(req *models.FriendRequest) error
	GetFriendRequestByID(id uint) (*models.FriendRequest, error)
	FindRequestBetween(userID, otherID uint) (*models.FriendRequest, error)
	UpdateFriendRequest(req *models.FriendRequest) error
	ListRequestsForRecipient(userID uint, status string) ([]models.FriendRequest, error)

	// Complaints
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	ListComplaints() ([]models.Complaint, error)
	ListComplaintsByUser(userID uint) ([]models.Complaint, error)
	TrackComplaint(email, code string) (*models.Complaint, error)
	BindPersonnel(complaintID, personnelID uint) error
	UpdateComplaintStatus(complaintID uint, status string) error
	GetComplaintTypeByName(name string) (*models.ComplaintType, error)
	ListComplaintTypes() ([]models.ComplaintType, error)
	SeedComplaintTypes(names []string) error

	// Personnel
	CreatePersonnel(p *models.Personnel) error
	ListPersonnel() ([]models.Personnel, error)
	FindPersonnel(name, contact string) (*models.Personnel, error)
	ClaimPersonnel(id uint) (bool, error)
	ReleasePersonnel(id uint) error

	// Feedback
	GetFeedbackByComplaint(complaintID uint) (*models.Feedback, error)
	CreateFeedback(fb *models.Feedback) error

	// Chat
	SaveChatMessage(msg *models.ChatMessage) error
	GetChatHistory(userID uint, limit int) ([]models.ChatMessage, error)
	ListChatUserIDs() ([]uint, error)
	PublishChatEvent(userID uint, ev models.ChatEvent) error

	// Password reset entries
	SaveResetToken(tokenHash, email string, ttl time.Duration) error
	GetResetEmail(tokenHash string) (string, error)
	DeleteResetToken(tokenHash string) error
}

// Service implements Storage on top of gorm and redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

var _ Storage = (*Service)(nil)

// NewService builds a storage service around an open gorm connection and a
// redis client. The redis client may be nil for tools that only touch the
// database (the admin CLI).
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// Migrate creates or updates every table the service owns.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.FriendRequest{},
		&models.ComplaintType{},
		&models.Personnel{},
		&models.Complaint{},
		&models.Feedback{},
		&models.ChatMessage{},
	)
}
