package chat

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RelayHandler serves POST /api/chat for clients that keep their own
// transcript and run the classification themselves. The wire contract:
// {messages: [{sender, text}], systemInstruction} in, {reply} out,
// {error} with a non-2xx status on failure, 405 for anything but POST.
func RelayHandler(client Client, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Header("Allow", http.MethodPost)
			c.String(http.StatusMethodNotAllowed, "Method %s Not Allowed", c.Request.Method)
			return
		}

		if client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server configuration error."})
			return
		}

		var req struct {
			Messages          []Message `json:"messages"`
			SystemInstruction string    `json:"systemInstruction"`
		}
		if err := c.BindJSON(&req); err != nil ||
			req.Messages == nil || strings.TrimSpace(req.SystemInstruction) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": `Invalid request body. "messages" and "systemInstruction" are required.`,
			})
			return
		}

		reply, err := client.Complete(c.Request.Context(), req.Messages, req.SystemInstruction)
		if err != nil {
			log.WithError(err).Error("relay: model request failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get response from AI"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}
