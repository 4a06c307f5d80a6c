package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the identity record behind every session. The email is stored
// case-normalized and is unique; the password is only ever stored as a
// bcrypt hash.
type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"fullName"`
	Role         string `gorm:"not null;default:user" json:"role"`

	// Onboarding / profile fields.
	ProfilePic     string `json:"profilePic"`
	Bio            string `json:"bio"`
	NativeLanguage string `json:"nativeLanguage"`
	LearnLanguage  string `json:"learnLanguage"`
	Location       string `json:"location"`
	IsOnboarded    bool   `gorm:"default:false" json:"isOnboarded"`

	Friends []*User `gorm:"many2many:user_friends" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicUser is the subset of User exposed in API responses and friend lists.
type PublicUser struct {
	ID             uint   `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePic     string `json:"profilePic"`
	NativeLanguage string `json:"nativeLanguage"`
	LearnLanguage  string `json:"learnLanguage"`
	IsOnboarded    bool   `json:"isOnboarded"`
}

// Public converts a User into its API representation.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePic:     u.ProfilePic,
		NativeLanguage: u.NativeLanguage,
		LearnLanguage:  u.LearnLanguage,
		IsOnboarded:    u.IsOnboarded,
	}
}
