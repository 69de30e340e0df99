package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/services"
	"github.com/davrk/leadbot/internal/utils"
)

// Ingestor is the slice of the content pipeline the admin API needs.
type Ingestor interface {
	Ingest(ctx context.Context, urls []string) (int, error)
}

type AdminHandler struct {
	auth     services.AuthService
	admin    services.AdminService
	tickets  services.TicketService
	settings services.SettingsService
	ingestor Ingestor
	urls     func() []string // source URL set for manual re-ingestion
}

func NewAdminHandler(auth services.AuthService, admin services.AdminService, tickets services.TicketService, settings services.SettingsService, ingestor Ingestor, urls func() []string) *AdminHandler {
	return &AdminHandler{auth: auth, admin: admin, tickets: tickets, settings: settings, ingestor: ingestor, urls: urls}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.Login", "invalid request body", err))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"token": token})
}

func (h *AdminHandler) Leads(c *gin.Context) {
	leads, err := h.admin.Leads(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"leads": leads})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"stats": stats})
}

func (h *AdminHandler) Tickets(c *gin.Context) {
	tickets, err := h.tickets.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"tickets": tickets})
}

type TicketStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) SetTicketStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.SetTicketStatus", "ticket id must be a number", err))
		return
	}

	var req TicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.SetTicketStatus", "invalid request body", err))
		return
	}

	if err := h.tickets.SetStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, nil)
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	cfg, err := h.settings.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"settings": cfg})
}

type SaveSettingsRequest struct {
	SenderEmail    string `json:"sender_email"`
	RecipientEmail string `json:"recipient_email"`
	Server         string `json:"server"`
	Port           int    `json:"port"`
	Username       string `json:"username"`
	Password       string `json:"password"` // accepted on write, never echoed back
	UseSSL         bool   `json:"use_ssl"`
}

func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var req SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.SaveSettings", "invalid request body", err))
		return
	}

	cfg := &models.SMTPSettings{
		SenderEmail:    req.SenderEmail,
		RecipientEmail: req.RecipientEmail,
		Server:         req.Server,
		Port:           req.Port,
		Username:       req.Username,
		Password:       req.Password,
		UseSSL:         req.UseSSL,
	}
	if err := h.settings.Save(c.Request.Context(), cfg); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"settings": cfg})
}

type TestEmailRequest struct {
	RecipientEmail string `json:"recipient_email"`
}

func (h *AdminHandler) TestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AdminHandler.TestEmail", "invalid request body", err))
		return
	}

	if err := h.settings.SendTest(c.Request.Context(), req.RecipientEmail); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"message": "test email sent"})
}

func (h *AdminHandler) Ingest(c *gin.Context) {
	count, err := h.ingestor.Ingest(c.Request.Context(), h.urls())
	if err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, "AdminHandler.Ingest", "ingestion failed", err))
		return
	}
	writeOK(c, gin.H{"chunks_indexed": count})
}
