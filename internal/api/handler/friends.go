package handler

import (
	"net/http"
	"strconv"

	"helpdesk/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Recommendations lists onboarded users the caller is not yet friends with.
func (h *Handler) Recommendations(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	users, err := h.Friends.Recommendations(current.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (h *Handler) ListFriends(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	friendsList, err := h.Friends.Friends(current.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, friendsList)
}

func (h *Handler) SendFriendRequest(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	recipientID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid user id")
		return
	}

	req, err := h.Friends.Send(current.ID, uint(recipientID))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Friend request sent successfully",
		"request": req,
	})
}

func (h *Handler) AcceptFriendRequest(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	requestID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request id")
		return
	}

	if err := h.Friends.Accept(uint(requestID), current.ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Friend request accepted"})
}

func (h *Handler) ListFriendRequests(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	incoming, accepted, err := h.Friends.Requests(current.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"incoming": incoming,
		"accepted": accepted,
	})
}
