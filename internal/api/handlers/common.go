package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davrk/leadbot/internal/utils"
)

// Every endpoint answers with a success envelope:
// {"success": true, ...} or {"success": false, "error": "..."}.

func writeOK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func writeError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), gin.H{
		"success": false,
		"error":   utils.SafeMessage(err),
	})
}
