package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/davrk/leadbot/internal/api/handlers"
	"github.com/davrk/leadbot/internal/api/middleware"
)

type Deps struct {
	User   *handlers.UserHandler
	Chat   *handlers.ChatHandler
	Ticket *handlers.TicketHandler
	Admin  *handlers.AdminHandler
	WS     *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")

	api.POST("/user/register", d.User.Register)
	api.GET("/user/history/:user_id", d.User.History)
	api.POST("/chat", d.Chat.Chat)
	api.GET("/questions", d.Chat.Questions)
	api.POST("/support/ticket", d.Ticket.Create)

	api.POST("/admin/login", d.Admin.Login)

	// Dashboard routes require the token from /admin/login.
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth())

	admin.GET("/leads", d.Admin.Leads)
	admin.GET("/stats", d.Admin.Stats)
	admin.GET("/tickets", d.Admin.Tickets)
	admin.PUT("/tickets/:id/status", d.Admin.SetTicketStatus)
	admin.GET("/smtp-settings", d.Admin.GetSettings)
	admin.POST("/smtp-settings", d.Admin.SaveSettings)
	admin.POST("/test-email", d.Admin.TestEmail)
	admin.POST("/ingest", d.Admin.Ingest)

	// WebSocket chat transport
	r.GET("/ws/chat", d.WS.ChatWS)
}
