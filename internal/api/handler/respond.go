package handler

import (
	"errors"
	"log"
	"net/http"

	"helpdesk/backend/internal/account"
	"helpdesk/backend/internal/complaint"
	"helpdesk/backend/internal/friends"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP taxonomy. Anything not
// recognized is logged with context and collapsed to a generic 500 so store
// detail never reaches a client.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, account.ErrValidation),
		errors.Is(err, complaint.ErrValidation),
		errors.Is(err, complaint.ErrInvalidRating),
		errors.Is(err, complaint.ErrUnknownType),
		errors.Is(err, friends.ErrSelfRequest),
		errors.Is(err, account.ErrInvalidResetToken):
		fail(ctx, http.StatusBadRequest, err.Error())

	case errors.Is(err, account.ErrEmailTaken),
		errors.Is(err, friends.ErrRequestExists),
		errors.Is(err, friends.ErrAlreadyFriends):
		fail(ctx, http.StatusBadRequest, err.Error())

	case errors.Is(err, account.ErrInvalidCredentials):
		fail(ctx, http.StatusUnauthorized, "Invalid credentials")

	case errors.Is(err, friends.ErrNotRecipient):
		fail(ctx, http.StatusForbidden, err.Error())

	case errors.Is(err, account.ErrUserNotFound),
		errors.Is(err, complaint.ErrNotFound),
		errors.Is(err, complaint.ErrPersonnelNotFound),
		errors.Is(err, friends.ErrNotFound),
		errors.Is(err, friends.ErrUserNotFound):
		fail(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, complaint.ErrDuplicateFeedback),
		errors.Is(err, complaint.ErrPersonnelUnavailable):
		fail(ctx, http.StatusConflict, err.Error())

	default:
		log.Printf("ERROR: %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}
