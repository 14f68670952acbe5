package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Obed2006p/Rincon-De-Lore/internal/cart"
	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
)

type Handler struct {
	service    *Service
	carts      *cart.Manager
	dispatcher *checkout.Dispatcher
}

func NewHandler(service *Service, carts *cart.Manager, dispatcher *checkout.Dispatcher) *Handler {
	return &Handler{service: service, carts: carts, dispatcher: dispatcher}
}

// POST /cart/:id/checkout
//
// Confirms the cart: records the order, clears the cart and returns
// the prefilled WhatsApp link for the customer to open.
func (h *Handler) Checkout(c *gin.Context) {
	sessionCart, ok := h.carts.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	var customer checkout.CustomerDetails
	if err := c.BindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery details"})
		return
	}

	cartLines := sessionCart.Lines()
	if len(cartLines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el carrito está vacío"})
		return
	}

	lines := make([]checkout.OrderLine, 0, len(cartLines))
	for _, line := range cartLines {
		lines = append(lines, checkout.OrderLine{
			Name:      line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
		})
	}

	placed, err := h.service.Place(c.Request.Context(), ChannelWhatsApp, lines, &customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sessionCart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"orderId":     placed.ID,
		"total":       placed.Total,
		"whatsappUrl": h.dispatcher.WhatsAppURL(lines, customer),
	})
}

// GET /admin/orders
func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
