package router

import (
	"helpdesk/backend/internal/api/handler"
	"helpdesk/backend/internal/auth"
	"helpdesk/backend/internal/config"
	"helpdesk/backend/internal/middleware"
	"helpdesk/backend/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with the full REST and websocket surface.
func New(h *handler.Handler, tokens *auth.TokenService, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", "./uploads")

	api := r.Group("/api")

	// Public routes.
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.POST("/auth/forgot-password", h.ForgotPassword)
	api.POST("/auth/reset-password/:token", h.ResetPassword)
	api.POST("/complaints/track", h.TrackComplaint)
	api.GET("/complaints/types", h.ListComplaintTypes)

	// Anything past this point needs a valid session cookie.
	authed := api.Group("")
	authed.Use(middleware.Authenticate(h.Store, tokens))

	authed.GET("/auth/me", h.Me)
	authed.POST("/auth/onboarding", h.Onboarding)

	authed.GET("/users", h.Recommendations)
	authed.GET("/users/friends", h.ListFriends)
	authed.POST("/users/friend-request/:id", h.SendFriendRequest)
	authed.PUT("/users/friend-request/:id/accept", h.AcceptFriendRequest)
	authed.GET("/users/friend-requests", h.ListFriendRequests)

	authed.POST("/complaints", h.SubmitComplaint)
	authed.GET("/complaints/user/:email", h.ListUserComplaints)
	authed.POST("/complaints/feedback", h.SubmitFeedback)

	authed.POST("/chat", h.SendChatMessage)
	authed.GET("/chat", h.ChatHistory)
	authed.GET("/ws", h.ServeWebSocket)

	// Admin-only surface.
	admin := authed.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))

	admin.GET("/users/:email", h.UserDetails)
	admin.GET("/complaints", h.ListComplaints)
	admin.PUT("/complaints/:id/assign", h.AssignComplaint)
	admin.PATCH("/complaints/:id", h.UpdateComplaintStatus)
	admin.GET("/personnel", h.ListPersonnel)
	admin.POST("/personnel", h.CreatePersonnel)
	admin.GET("/chat/users", h.ChatConversations)

	return r
}
