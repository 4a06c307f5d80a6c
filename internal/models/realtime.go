package models

import "time"

// ChatEvent is the wire form of a chat message, sent over WebSocket and
// through the redis pub/sub channel. The persisted row is the source of
// truth; events only notify connected clients that a row was appended.
type ChatEvent struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"user_id"`
	Message  string    `json:"message"`
	FromRole string    `json:"from_role"`
	SentAt   time.Time `json:"sent_at"`
}
