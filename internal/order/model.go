package order

import (
	"time"

	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
)

const (
	// ChannelWeb is a checkout confirmed in the cart modal.
	ChannelWeb = "web"
	// ChannelWhatsApp is an order handed off through the wa.me link.
	ChannelWhatsApp = "whatsapp"
)

// Order is one placed order kept in the archive.
type Order struct {
	ID        string                    `json:"id"`
	Channel   string                    `json:"channel"`
	Lines     []checkout.OrderLine      `json:"lines"`
	Total     float64                   `json:"total"`
	Customer  *checkout.CustomerDetails `json:"customer,omitempty"`
	CreatedAt time.Time                 `json:"createdAt"`
}
