package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *Engine
}

// NewHandler accepts a nil engine: the routes stay mounted and answer
// 503, so a missing model credential degrades instead of crashing.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) disabled(c *gin.Context) bool {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "el asistente no está disponible por ahora"})
		return true
	}
	return false
}

// POST /chat/session
func (h *Handler) Open(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	s := h.engine.Open(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": s.ID,
		"cartId":    s.CartID,
		"messages":  s.Messages(),
	})
}

// POST /chat/session/:id
func (h *Handler) Send(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	result, err := h.engine.Send(c.Request.Context(), c.Param("id"), req.Message)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found"})
	case errors.Is(err, ErrTurnInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "espera la respuesta anterior"})
	case errors.Is(err, ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, result)
	}
}

// DELETE /chat/session/:id
func (h *Handler) Close(c *gin.Context) {
	if h.disabled(c) {
		return
	}

	if !h.engine.Close(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
