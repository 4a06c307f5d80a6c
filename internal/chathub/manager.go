// Package chathub fans chat events out to the live connections of a support
// conversation. The persisted message log is the source of truth; the hub
// only notifies connected clients that a row was appended, and clients
// reconcile by re-fetching history.
package chathub

import (
	"encoding/json"
	"log"

	"helpdesk/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Storage is the persistence slice the hub needs. Messages are saved before
// they are published so a crashed push never loses data.
type Storage interface {
	SaveChatMessage(msg *models.ChatMessage) error
	PublishChatEvent(userID uint, ev models.ChatEvent) error
}

// Manager routes chat traffic between clients, the store and the redis
// pub/sub channel shared with other instances.
type Manager struct {
	Clients map[Client]bool

	RegisterCh   chan Client
	UnregisterCh chan Client
	IncomingCh   chan models.ChatEvent
	PubSubCh     chan models.ChatEvent

	Storage Storage
}

func NewManager(s Storage) *Manager {
	return &Manager{
		Clients:      make(map[Client]bool),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		IncomingCh:   make(chan models.ChatEvent),
		PubSubCh:     make(chan models.ChatEvent),
		Storage:      s,
	}
}

// Run is the hub's dispatch loop. It owns the Clients map; no other
// goroutine touches it.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client] = true

		case client := <-m.UnregisterCh:
			if m.Clients[client] {
				delete(m.Clients, client)
				client.Close()
			}

		case ev := <-m.IncomingCh:
			m.handleIncoming(ev)

		case ev := <-m.PubSubCh:
			m.fanOut(ev)
		}
	}
}

// handleIncoming persists a message written by a connected client and then
// publishes the append notification. Local fan-out happens when the event
// comes back through the subscription, the same path remote instances use.
func (m *Manager) handleIncoming(ev models.ChatEvent) {
	msg := &models.ChatMessage{
		UserID:   ev.UserID,
		Message:  ev.Message,
		FromRole: ev.FromRole,
	}
	if err := m.Storage.SaveChatMessage(msg); err != nil {
		log.Printf("ERROR: dropping chat message for conversation %d: %v", ev.UserID, err)
		return
	}

	ev.ID = msg.ID
	ev.SentAt = msg.CreatedAt
	if err := m.Storage.PublishChatEvent(ev.UserID, ev); err != nil {
		log.Printf("ERROR: failed to publish chat event for conversation %d: %v", ev.UserID, err)
	}
}

// fanOut delivers an event to every client observing its conversation.
func (m *Manager) fanOut(ev models.ChatEvent) {
	for client := range m.Clients {
		if client.GetConversationID() != ev.UserID {
			continue
		}
		select {
		case client.GetSendChannel() <- ev:
		default:
			// Slow consumer; drop it rather than block the hub.
			delete(m.Clients, client)
			client.Close()
		}
	}
}

// ListenEvents forwards redis pub/sub messages into the dispatch loop.
// Intended to run as its own goroutine alongside Run.
func (m *Manager) ListenEvents(pubsub *redis.PubSub) {
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var ev models.ChatEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Printf("ERROR: failed to decode chat event from pub/sub: %v", err)
			continue
		}
		m.PubSubCh <- ev
	}
}
