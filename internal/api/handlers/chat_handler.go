package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/davrk/leadbot/internal/services"
	"github.com/davrk/leadbot/internal/utils"
)

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"` // optional: anonymous turns are answered but not recorded
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Chat", "invalid request body", err))
		return
	}

	res, meta, err := h.svc.Ask(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, gin.H{
		"response":        res.Answer,
		"source":          res.Source,
		"suggest_support": res.SuggestSupport,
		"metadata":        meta,
	})
}

func (h *ChatHandler) Questions(c *gin.Context) {
	questions, err := h.svc.Questions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, gin.H{"questions": questions})
}
