package handler

import (
	"net/http"
	"strconv"

	"helpdesk/backend/internal/chathub"
	"helpdesk/backend/internal/middleware"
	"helpdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The cookie middleware already authenticated the caller; origin is
	// enforced by the CORS layer in front of the router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and attaches the caller to their
// support conversation. Regular users join their own conversation; admins
// pick one with ?user_id.
func (h *Handler) ServeWebSocket(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	conversation := current.ID
	role := models.ChatFromUser
	if current.Role == models.RoleAdmin {
		role = models.ChatFromAdmin
		raw := ctx.Query("user_id")
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			fail(ctx, http.StatusBadRequest, "user_id query parameter is required")
			return
		}
		conversation = uint(parsed)
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		fail(ctx, http.StatusInternalServerError, "Failed to upgrade connection")
		return
	}

	client := &chathub.WebSocketClient{
		Hub:            h.Hub,
		UserID:         current.ID,
		ConversationID: conversation,
		Role:           role,
		Conn:           conn,
		Send:           make(chan models.ChatEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
