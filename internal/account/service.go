// Package account owns the credential store operations: signup, login,
// onboarding and the password-reset flow.
package account

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrValidation         = errors.New("missing or malformed input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// Store is the persistence slice the account service needs.
type Store interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	UpdateUserPassword(email, passwordHash string) error

	SaveResetToken(tokenHash, email string, ttl time.Duration) error
	GetResetEmail(tokenHash string) (string, error)
	DeleteResetToken(tokenHash string) error
}

// Notifier is the outbound side of the reset flow.
type Notifier interface {
	PasswordReset(email, name, resetLink string)
}

type Service struct {
	store    Store
	notifier Notifier
	cfg      *config.Config
}

func NewService(store Store, notifier Notifier, cfg *config.Config) *Service {
	return &Service{store: store, notifier: notifier, cfg: cfg}
}

// NormalizeEmail trims whitespace and lowercases, so " A@B.com " and
// "a@b.com" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a user with the default role. The email is normalized
// before the uniqueness check and the password stored only as a bcrypt hash.
func (s *Service) Signup(email, password, fullName string) (*models.User, error) {
	email = NormalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" || password == "" || fullName == "" {
		return nil, ErrValidation
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	existing, err := s.store.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         models.RoleUser,
		ProfilePic:   fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", rand.Intn(100)+1),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the user record.
func (s *Service) Login(email, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Onboard fills in the profile fields collected after signup. Every field is
// required.
func (s *Service) Onboard(userID uint, fullName, bio, nativeLanguage, learnLanguage, location string) (*models.User, error) {
	if fullName == "" || bio == "" || nativeLanguage == "" || learnLanguage == "" || location == "" {
		return nil, ErrValidation
	}

	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.FullName = strings.TrimSpace(fullName)
	user.Bio = bio
	user.NativeLanguage = nativeLanguage
	user.LearnLanguage = learnLanguage
	user.Location = location
	user.IsOnboarded = true

	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword creates a single-use reset entry and mails the link. Only
// the hash of the token is stored; expiry is enforced by the store's TTL.
func (s *Service) ForgotPassword(email string) error {
	email = NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	if err := s.store.SaveResetToken(hashToken(token), email, config.ResetTokenTTL); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.ResetLinkBase, "/"), token)
	s.notifier.PasswordReset(email, user.FullName, resetLink)
	return nil
}

// ResetPassword consumes a reset token and installs the new password.
func (s *Service) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	tokenHash := hashToken(token)
	email, err := s.store.GetResetEmail(tokenHash)
	if err != nil {
		return err
	}
	if email == "" {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.store.UpdateUserPassword(email, string(hash)); err != nil {
		return err
	}

	if err := s.store.DeleteResetToken(tokenHash); err != nil {
		log.Printf("WARNING: failed to delete consumed reset token: %v", err)
	}
	return nil
}

// Details looks a user up by email for the admin dashboard.
func (s *Service) Details(email string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
