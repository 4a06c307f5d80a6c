package account_test

import (
	"strings"
	"testing"

	"helpdesk/backend/internal/account"
	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newService() (*account.Service, *MockStore, *MockNotifier) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	cfg := &config.Config{ResetLinkBase: "http://localhost:5173/reset-password"}
	return account.NewService(store, notifier, cfg), store, notifier
}

func hashed(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", account.NormalizeEmail("  Jane@Example.COM "))
}

func TestSignup_Validation(t *testing.T) {
	svc, store, _ := newService()

	tests := []struct {
		name     string
		email    string
		password string
		fullName string
	}{
		{"empty email", "", "secret1", "Jane"},
		{"empty password", "jane@example.com", "", "Jane"},
		{"empty name", "jane@example.com", "secret1", ""},
		{"short password", "jane@example.com", "abc", "Jane"},
		{"no at sign", "janeexample.com", "secret1", "Jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(tt.email, tt.password, tt.fullName)
			assert.ErrorIs(t, err, account.ErrValidation)
		})
	}
	store.AssertNotCalled(t, "CreateUser", mock.Anything)
}

// Signup must treat "Jane@Example.com" and "jane@example.com" as the same
// account.
func TestSignup_NormalizesBeforeUniquenessCheck(t *testing.T) {
	svc, store, _ := newService()

	store.On("GetUserByEmail", "jane@example.com").Return(&models.User{Email: "jane@example.com"}, nil)

	_, err := svc.Signup("  Jane@Example.COM ", "secret1", "Jane Doe")
	assert.ErrorIs(t, err, account.ErrEmailTaken)
}

func TestSignup_CreatesUserWithHashAndAvatar(t *testing.T) {
	svc, store, _ := newService()

	store.On("GetUserByEmail", "jane@example.com").Return(nil, nil)
	store.On("CreateUser", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Signup("jane@example.com", "secret1", "Jane Doe")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	assert.True(t, strings.HasPrefix(user.ProfilePic, "https://avatar.iran.liara.run/public/"))
}

func TestLogin(t *testing.T) {
	svc, store, _ := newService()

	store.On("GetUserByEmail", "jane@example.com").Return(&models.User{
		Model: gorm.Model{ID: 1}, Email: "jane@example.com", PasswordHash: hashed("secret1"),
	}, nil)
	store.On("GetUserByEmail", "ghost@example.com").Return(nil, nil)

	user, err := svc.Login("Jane@Example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.Login("jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)

	// An unknown account fails the same way as a bad password.
	_, err = svc.Login("ghost@example.com", "secret1")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestOnboard(t *testing.T) {
	svc, store, _ := newService()

	store.On("GetUserByID", uint(1)).Return(&models.User{Model: gorm.Model{ID: 1}}, nil)
	store.On("UpdateUser", mock.MatchedBy(func(u *models.User) bool {
		return u.IsOnboarded && u.Bio == "Hi" && u.Location == "Kyiv"
	})).Return(nil)

	user, err := svc.Onboard(1, "Jane Doe", "Hi", "Ukrainian", "English", "Kyiv")
	assert.NoError(t, err)
	assert.True(t, user.IsOnboarded)

	_, err = svc.Onboard(1, "Jane Doe", "", "Ukrainian", "English", "Kyiv")
	assert.ErrorIs(t, err, account.ErrValidation)
}

func TestForgotPassword_StoresHashNotToken(t *testing.T) {
	svc, store, notifier := newService()

	store.On("GetUserByEmail", "jane@example.com").Return(&models.User{
		Email: "jane@example.com", FullName: "Jane Doe",
	}, nil)

	var storedHash, mailedLink string
	store.On("SaveResetToken", mock.AnythingOfType("string"), "jane@example.com", config.ResetTokenTTL).
		Run(func(args mock.Arguments) { storedHash = args.String(0) }).Return(nil)
	notifier.On("PasswordReset", "jane@example.com", "Jane Doe", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { mailedLink = args.String(2) }).Return()

	assert.NoError(t, svc.ForgotPassword("jane@example.com"))

	token := mailedLink[strings.LastIndex(mailedLink, "/")+1:]
	assert.NotEmpty(t, token)
	assert.NotContains(t, storedHash, token)
	assert.Len(t, storedHash, 64) // hex sha256
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc, store, notifier := newService()

	store.On("GetUserByEmail", "ghost@example.com").Return(nil, nil)

	err := svc.ForgotPassword("ghost@example.com")
	assert.ErrorIs(t, err, account.ErrUserNotFound)
	notifier.AssertNotCalled(t, "PasswordReset", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPassword(t *testing.T) {
	svc, store, _ := newService()

	store.On("GetResetEmail", mock.AnythingOfType("string")).Return("jane@example.com", nil)
	store.On("UpdateUserPassword", "jane@example.com", mock.AnythingOfType("string")).Return(nil)
	store.On("DeleteResetToken", mock.AnythingOfType("string")).Return(nil)

	assert.NoError(t, svc.ResetPassword("some-token", "new-secret"))
	store.AssertCalled(t, "DeleteResetToken", mock.AnythingOfType("string"))
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	svc, store, _ := newService()

	store.On("GetResetEmail", mock.AnythingOfType("string")).Return("", nil)

	err := svc.ResetPassword("stale-token", "new-secret")
	assert.ErrorIs(t, err, account.ErrInvalidResetToken)
	store.AssertNotCalled(t, "UpdateUserPassword", mock.Anything, mock.Anything)
}

func TestResetPassword_ShortPassword(t *testing.T) {
	svc, store, _ := newService()

	err := svc.ResetPassword("some-token", "abc")
	assert.ErrorIs(t, err, account.ErrValidation)
	store.AssertNotCalled(t, "GetResetEmail", mock.Anything)
}
