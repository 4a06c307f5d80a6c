package models

import "gorm.io/gorm"

const (
	ChatFromUser  = "user"
	ChatFromAdmin = "admin"
)

// ChatMessage is one row of the append-only support chat log. A conversation
// is identified by the end user's id; admins write into the same log with
// FromRole set to "admin". Messages are never mutated or deleted.
type ChatMessage struct {
	gorm.Model

	// UserID is the conversation owner, regardless of who sent the message.
	UserID   uint   `gorm:"not null;index" json:"userId"`
	Message  string `gorm:"type:text;not null" json:"message"`
	FromRole string `gorm:"not null" json:"fromRole"`
}
