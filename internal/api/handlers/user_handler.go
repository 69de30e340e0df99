package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davrk/leadbot/internal/services"
	"github.com/davrk/leadbot/internal/utils"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.Register", "invalid request body", err))
		return
	}

	user, recent, err := h.svc.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	questions := make([]string, 0, len(recent))
	for _, m := range recent {
		questions = append(questions, m.Question)
	}

	writeOK(c, gin.H{
		"user_id":          user.ID,
		"name":             user.Name,
		"email":            user.Email,
		"recent_questions": questions,
	})
}

func (h *UserHandler) History(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.History", "user_id must be a number", err))
		return
	}

	history, err := h.svc.History(c.Request.Context(), uint(id), 10)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, gin.H{"history": history})
}
