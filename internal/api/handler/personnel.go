package handler

import (
	"net/http"

	"helpdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type personnelRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Role    string `json:"role" binding:"required"`
}

// ListPersonnel returns the whole roster, availability included, admin only.
func (h *Handler) ListPersonnel(ctx *gin.Context) {
	roster, err := h.Store.ListPersonnel()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "personnel": roster})
}

func (h *Handler) CreatePersonnel(ctx *gin.Context) {
	var req personnelRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "name, contact and role are required")
		return
	}

	p := &models.Personnel{
		Name:      req.Name,
		Contact:   req.Contact,
		Role:      req.Role,
		Available: true,
	}
	if err := h.Store.CreatePersonnel(p); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "personnel": p})
}
