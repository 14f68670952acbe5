package catalog

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /menu
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no se pudieron cargar los platillos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /menu/today
func (h *Handler) Today(c *gin.Context) {
	now := time.Now()

	items, err := h.service.ForDay(c.Request.Context(), now)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no se pudieron cargar los platillos"})
		return
	}

	featured, err := h.service.Featured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no se pudieron cargar los platillos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"day":      DayName(now),
		"items":    items,
		"featured": featured,
	})
}

// --------------------------------------------------
// Admin: manage dish documents
// --------------------------------------------------

type AdminHandler struct {
	service *Service
	storage Storage
}

// Storage uploads a dish image and returns its public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

func NewAdminHandler(service *Service, storage Storage) *AdminHandler {
	return &AdminHandler{service: service, storage: storage}
}

// POST /admin/menu
func (h *AdminHandler) Upsert(c *gin.Context) {
	var item MenuItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item"})
		return
	}

	if err := h.service.Upsert(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DELETE /admin/menu/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /admin/menu/:id/image
func (h *AdminHandler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	id := c.Param("id")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf(
		"dishes/%s/%s%s",
		id,
		uuid.New().String(),
		strings.ToLower(filepath.Ext(header.Filename)),
	)

	url, err := h.storage.Upload(
		c.Request.Context(),
		key,
		file,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SetImageURL(c.Request.Context(), id, url); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
