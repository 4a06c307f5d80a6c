package handler

import (
	"net/http"
	"strconv"

	"helpdesk/backend/internal/middleware"
	"helpdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
)

const defaultChatHistoryLimit = 50

type chatMessageRequest struct {
	Message string `json:"message" binding:"required"`
	// UserID selects the conversation. Only admins may set it; regular
	// users always write into their own conversation.
	UserID uint `json:"userId"`
}

// conversationID resolves which conversation the caller may touch. A user's
// conversation is keyed by their own ID; an admin picks one via userID.
func conversationID(current middleware.AuthenticatedUser, requested uint) (uint, bool) {
	if current.Role == models.RoleAdmin {
		if requested == 0 {
			return 0, false
		}
		return requested, true
	}
	if requested != 0 && requested != current.ID {
		return 0, false
	}
	return current.ID, true
}

// SendChatMessage persists a message and publishes it so connected
// websocket clients of the same conversation see it live.
func (h *Handler) SendChatMessage(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	var req chatMessageRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "message is required")
		return
	}

	convID, ok := conversationID(current, req.UserID)
	if !ok {
		fail(ctx, http.StatusForbidden, "You do not have permission to perform this action")
		return
	}

	fromRole := models.ChatFromUser
	if current.Role == models.RoleAdmin {
		fromRole = models.ChatFromAdmin
	}

	msg := &models.ChatMessage{
		UserID:   convID,
		Message:  req.Message,
		FromRole: fromRole,
	}
	if err := h.Store.SaveChatMessage(msg); err != nil {
		respondError(ctx, err)
		return
	}

	ev := models.ChatEvent{
		ID:       msg.ID,
		UserID:   convID,
		Message:  msg.Message,
		FromRole: msg.FromRole,
		SentAt:   msg.CreatedAt,
	}
	if err := h.Store.PublishChatEvent(convID, ev); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "chatMessage": ev})
}

// ChatHistory returns a conversation's recent messages, oldest first.
func (h *Handler) ChatHistory(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	var requested uint
	if raw := ctx.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fail(ctx, http.StatusBadRequest, "Invalid user_id")
			return
		}
		requested = uint(parsed)
	}

	convID, ok := conversationID(current, requested)
	if !ok {
		fail(ctx, http.StatusForbidden, "You do not have permission to perform this action")
		return
	}

	limit := defaultChatHistoryLimit
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	history, err := h.Store.GetChatHistory(convID, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "messages": history})
}

// ChatConversations lists the users who have an open support conversation,
// for the admin inbox.
func (h *Handler) ChatConversations(ctx *gin.Context) {
	ids, err := h.Store.ListChatUserIDs()
	if err != nil {
		respondError(ctx, err)
		return
	}

	users := make([]models.PublicUser, 0, len(ids))
	for _, id := range ids {
		user, err := h.Store.GetUserByID(id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if user == nil {
			continue
		}
		users = append(users, user.Public())
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
