package chat

import (
	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Greeting is the canned opener appended when a session starts. It is
// never sent to the hosted model and costs no network round-trip.
const Greeting = "¡Qué onda! Soy Lore Chef, tu asistente personal. ¿Qué se te antoja pedir hoy?"

// Apology replaces the assistant turn when the model request fails.
const Apology = "¡Ups! Se me cruzaron los cables. Por favor, intenta de nuevo."

// Message is one transcript entry. Link/LinkText carry the WhatsApp
// handoff action when present.
type Message struct {
	Sender   string `json:"sender"`
	Text     string `json:"text"`
	Link     string `json:"link,omitempty"`
	LinkText string `json:"linkText,omitempty"`
}

// OrderItem is one {name, quantity} pair from a directive.
type OrderItem struct {
	Name     string
	Quantity int
}

// AddToCart is the add_to_cart directive.
type AddToCart struct {
	Items []OrderItem
}

// Handoff is the prepare_whatsapp_message directive.
type Handoff struct {
	OrderItems []OrderItem
	Customer   checkout.CustomerDetails
}

// Phase is the client-side view of where the conversation stands.
// The model owns the actual script; the phase advances on observed
// directives so transitions stay testable regardless of wording.
type Phase int

const (
	PhaseOrdering Phase = iota
	PhaseDelivery
	PhaseConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseOrdering:
		return "ordering"
	case PhaseDelivery:
		return "delivery"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}
