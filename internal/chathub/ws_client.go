package chathub

import (
	"encoding/json"
	"log"
	"time"

	"helpdesk/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// inboundFrame is what a connected client writes: just the text. Identity
// and conversation come from the authenticated connection, never the frame.
type inboundFrame struct {
	Message string `json:"message"`
}

// WebSocketClient implements Client over a gorilla/websocket connection.
type WebSocketClient struct {
	UserID         uint
	ConversationID uint
	Role           string
	Conn           *websocket.Conn
	Hub            *Manager
	Send           chan models.ChatEvent
}

func (c *WebSocketClient) GetUserID() uint                         { return c.UserID }
func (c *WebSocketClient) GetConversationID() uint                 { return c.ConversationID }
func (c *WebSocketClient) GetSendChannel() chan<- models.ChatEvent { return c.Send }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close shuts the Send channel down, which stops the write pump.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message from user %d: %v", c.UserID, err)
			}
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Printf("Error decoding frame from user %d: %v", c.UserID, err)
			continue
		}
		if frame.Message == "" {
			continue
		}

		c.Hub.IncomingCh <- models.ChatEvent{
			UserID:   c.ConversationID,
			Message:  frame.Message,
			FromRole: c.Role,
			SentAt:   time.Now(),
		}
	}
}

func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(ev)
			if err != nil {
				log.Printf("Error encoding event for user %d: %v", c.UserID, err)
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
