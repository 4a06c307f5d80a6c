package models

import "gorm.io/gorm"

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
)

// FriendRequest is the pending/accepted edge between two users. At most one
// request may exist between an unordered pair at a time, in either direction;
// the engine enforces this, not the schema.
type FriendRequest struct {
	gorm.Model

	SenderID    uint   `gorm:"not null;index" json:"senderId"`
	RecipientID uint   `gorm:"not null;index" json:"recipientId"`
	Status      string `gorm:"not null;default:pending" json:"status"`

	Sender    User `gorm:"foreignKey:SenderID" json:"sender"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
}
