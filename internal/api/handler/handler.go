// Package handler contains the gin handlers for the REST surface and the
// WebSocket upgrade endpoint.
package handler

import (
	"helpdesk/backend/internal/account"
	"helpdesk/backend/internal/auth"
	"helpdesk/backend/internal/chathub"
	"helpdesk/backend/internal/complaint"
	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/friends"
	"helpdesk/backend/internal/storage"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Store      storage.Storage
	Accounts   *account.Service
	Complaints *complaint.Service
	Friends    *friends.Service
	Tokens     *auth.TokenService
	Hub        *chathub.Manager
	Cfg        *config.Config
}

func NewHandler(
	store storage.Storage,
	accounts *account.Service,
	complaints *complaint.Service,
	friendSvc *friends.Service,
	tokens *auth.TokenService,
	hub *chathub.Manager,
	cfg *config.Config,
) *Handler {
	return &Handler{
		Store:      store,
		Accounts:   accounts,
		Complaints: complaints,
		Friends:    friendSvc,
		Tokens:     tokens,
		Hub:        hub,
		Cfg:        cfg,
	}
}
