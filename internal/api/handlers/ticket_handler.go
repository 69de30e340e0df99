package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/davrk/leadbot/internal/services"
	"github.com/davrk/leadbot/internal/utils"
)

type TicketHandler struct {
	svc services.TicketService
}

func NewTicketHandler(svc services.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

type CreateTicketRequest struct {
	UserID  uint   `json:"user_id"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "TicketHandler.Create", "invalid request body", err))
		return
	}

	ticket, err := h.svc.Create(c.Request.Context(), req.UserID, req.Subject, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, gin.H{"ticket_id": ticket.ID})
}
