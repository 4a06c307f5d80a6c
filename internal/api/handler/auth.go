package handler

import (
	"net/http"

	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type onboardingRequest struct {
	FullName       string `json:"fullName"`
	Bio            string `json:"bio"`
	NativeLanguage string `json:"nativeLanguage"`
	LearnLanguage  string `json:"learnLanguage"`
	Location       string `json:"location"`
}

func (h *Handler) Signup(ctx *gin.Context) {
	var req signupRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "email, password and fullName are required")
		return
	}

	user, err := h.Accounts.Signup(req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	h.setSessionCookie(ctx, token)

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.Accounts.Login(req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	h.setSessionCookie(ctx, token)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user.Public(),
	})
}

func (h *Handler) Logout(ctx *gin.Context) {
	h.clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Me returns the authenticated identity, for session restoration on the
// client.
func (h *Handler) Me(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	user, err := h.Store.GetUserByID(current.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if user == nil {
		fail(ctx, http.StatusUnauthorized, "User no longer exists")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

func (h *Handler) Onboarding(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, http.StatusUnauthorized, "Authentication required, please log in")
		return
	}

	var req onboardingRequest
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := h.Accounts.Onboard(current.ID,
		req.FullName, req.Bio, req.NativeLanguage, req.LearnLanguage, req.Location)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

func (h *Handler) ForgotPassword(ctx *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.Accounts.ForgotPassword(req.Email); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset email sent"})
}

func (h *Handler) ResetPassword(ctx *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.BindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "password is required")
		return
	}

	if err := h.Accounts.ResetPassword(ctx.Param("token"), req.Password); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset, you can now log in"})
}

// UserDetails returns one user's record by email, for the admin dashboard.
func (h *Handler) UserDetails(ctx *gin.Context) {
	user, err := h.Accounts.Details(ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

func (h *Handler) setSessionCookie(ctx *gin.Context, token string) {
	h.writeSessionCookie(ctx, token, int(config.TokenTTL.Seconds()))
}

func (h *Handler) clearSessionCookie(ctx *gin.Context) {
	h.writeSessionCookie(ctx, "", -1)
}

func (h *Handler) writeSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.Cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
