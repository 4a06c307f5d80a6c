package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"helpdesk/backend/internal/account"
	"helpdesk/backend/internal/complaint"
	"helpdesk/backend/internal/middleware"
	"helpdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const uploadDir = "uploads"

type assignRequest struct {
	AssignedName    string `json:"assignedName" binding:"required"`
	AssignedContact string `json:"assignedContact" binding:"required"`
}

type trackRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type feedbackRequest struct {
	ComplaintID uint   `json:"complaintId" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Comment     string `json:"comment"`
}

// complaintResponse is the joined row the dashboards render.
type complaintResponse struct {
	ID              uint      `json:"id"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	Location        string    `json:"location"`
	Message         string    `json:"message"`
	Attachments     []string  `json:"attachments"`
	Code            string    `json:"code"`
	FeedbackGiven   bool      `json:"feedbackGiven"`
	CreatedAt       time.Time `json:"createdAt"`
	Type            string    `json:"type"`
	OwnerName       string    `json:"name,omitempty"`
	OwnerEmail      string    `json:"email,omitempty"`
	AssignedName    string    `json:"assignedName,omitempty"`
	AssignedContact string    `json:"assignedContact,omitempty"`
}

func toComplaintResponse(c models.Complaint) complaintResponse {
	resp := complaintResponse{
		ID:            c.ID,
		Status:        c.Status,
		Priority:      c.Priority,
		Location:      c.Location,
		Message:       c.Message,
		Attachments:   c.Attachments,
		Code:          c.Code,
		FeedbackGiven: c.FeedbackGiven,
		CreatedAt:     c.CreatedAt,
		Type:          c.ComplaintType.TypeName,
		OwnerName:     c.User.FullName,
		OwnerEmail:    c.User.Email,
	}
	if c.AssignedPersonnel != nil {
		resp.AssignedName = c.AssignedPersonnel.Name
		resp.AssignedContact = c.AssignedPersonnel.Contact
	}
	return resp
}

// SubmitComplaint accepts a multipart form: type, message, location,
// priority plus optional file attachments.
func (h *Handler) SubmitComplaint(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	in := complaint.SubmitInput{
		Type:     ctx.PostForm("type"),
		Message:  ctx.PostForm("message"),
		Location: ctx.PostForm("location"),
		Priority: ctx.PostForm("priority"),
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["attachments"] {
			name := uuid.NewString() + filepath.Ext(file.Filename)
			if err := ctx.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
				respondError(ctx, fmt.Errorf("failed to store attachment: %w", err))
				return
			}
			in.Attachments = append(in.Attachments, name)
		}
	}

	created, err := h.Complaints.Submit(current.ID, in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Ticket submitted and notification sent",
		"complaint": toComplaintResponse(*created),
	})
}

// ListComplaints returns every complaint, admin only.
func (h *Handler) ListComplaints(ctx *gin.Context) {
	complaints, err := h.Complaints.ListAll()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    lo.Map(complaints, func(c models.Complaint, _ int) complaintResponse { return toComplaintResponse(c) }),
	})
}

// ListUserComplaints returns one user's complaints. Users may only read
// their own; admins may read anyone's.
func (h *Handler) ListUserComplaints(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	email := account.NormalizeEmail(ctx.Param("email"))
	if current.Role != models.RoleAdmin && email != current.Email {
		fail(ctx, http.StatusForbidden, "You do not have permission to perform this action")
		return
	}

	owner, err := h.Store.GetUserByEmail(email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if owner == nil {
		fail(ctx, http.StatusNotFound, "User not found")
		return
	}

	complaints, err := h.Complaints.ListByOwner(owner.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"complaints": lo.Map(complaints, func(c models.Complaint, _ int) complaintResponse { return toComplaintResponse(c) }),
	})
}

func (h *Handler) AssignComplaint(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid complaint id")
		return
	}

	var req assignRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Please provide both name and contact of personnel")
		return
	}

	if err := h.Complaints.Assign(uint(id), req.AssignedName, req.AssignedContact); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Personnel assigned successfully"})
}

// UpdateComplaintStatus handles the admin PATCH. The lifecycle only moves
// forward, so the single accepted transition is to Resolved.
func (h *Handler) UpdateComplaintStatus(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid complaint id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "status is required")
		return
	}
	if req.Status != models.ComplaintResolved {
		fail(ctx, http.StatusBadRequest, "Only the Resolved transition is supported")
		return
	}

	if err := h.Complaints.Resolve(uint(id)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Complaint marked as resolved"})
}

// TrackComplaint is the public tracking endpoint: owner email plus code.
func (h *Handler) TrackComplaint(ctx *gin.Context) {
	var req trackRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Email and ticket code are required")
		return
	}

	result, err := h.Complaints.Track(account.NormalizeEmail(req.Email), req.Code)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := gin.H{"success": true, "status": result.Status}
	if result.Personnel != nil {
		resp["personnel"] = gin.H{
			"name":    result.Personnel.Name,
			"contact": result.Personnel.Contact,
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

func (h *Handler) SubmitFeedback(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	var req feedbackRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "complaintId and rating are required")
		return
	}

	if err := h.Complaints.RecordFeedback(req.ComplaintID, current.ID, req.Rating, req.Comment); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Feedback submitted successfully"})
}

// ListComplaintTypes is public so the submission form can populate its
// category selector before login.
func (h *Handler) ListComplaintTypes(ctx *gin.Context) {
	types, err := h.Complaints.Types()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "complaintTypes": types})
}
