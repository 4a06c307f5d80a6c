package chathub

import "helpdesk/backend/internal/models"

// Client is one live connection observing a support conversation. The hub
// manages clients uniformly regardless of transport; today the only
// implementation is the WebSocket client.
type Client interface {
	// GetUserID returns the id of the user holding the connection.
	GetUserID() uint
	// GetConversationID returns the conversation the client observes: the
	// end user's own id, or the id an admin opened from the inbox.
	GetConversationID() uint
	// GetSendChannel returns the channel the hub writes outbound events to.
	GetSendChannel() chan<- models.ChatEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts the client's outbound channel down.
	Close()
}
