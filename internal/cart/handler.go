package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Obed2006p/Rincon-De-Lore/internal/catalog"
)

type Handler struct {
	manager *Manager
	catalog *catalog.Service
}

func NewHandler(manager *Manager, catalogService *catalog.Service) *Handler {
	return &Handler{manager: manager, catalog: catalogService}
}

// POST /cart
func (h *Handler) Create(c *gin.Context) {
	cart := h.manager.Create()
	c.JSON(http.StatusCreated, gin.H{"cartId": cart.ID})
}

// GET /cart/:id
func (h *Handler) Get(c *gin.Context) {
	cart, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartId": cart.ID,
		"lines":  cart.Lines(),
		"total":  cart.Total(),
	})
}

// POST /cart/:id/items
func (h *Handler) AddItem(c *gin.Context) {
	cart, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	var req struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and quantity are required"})
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	items, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	var item catalog.MenuItem
	found := false
	for _, candidate := range items {
		if candidate.ID == req.ItemID {
			item = candidate
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	cart.AddOrIncrement(item, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"lines": cart.Lines(),
		"total": cart.Total(),
	})
}

// PUT /cart/:id/items/:itemId
func (h *Handler) SetQuantity(c *gin.Context) {
	cart, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	cart.SetQuantity(c.Param("itemId"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"lines": cart.Lines(),
		"total": cart.Total(),
	})
}
