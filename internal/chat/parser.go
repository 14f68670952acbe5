package chat

import (
	"encoding/json"
	"strings"
)

// Reply is the classified form of a raw model response: exactly one of
// the directive pointers is set, or neither and Text carries the reply
// verbatim.
type Reply struct {
	Text      string
	AddToCart *AddToCart
	Handoff   *Handoff
}

// Wire shapes. Field names are the literal contract the system
// instruction demands from the model; quantities are decoded as
// float64 because the model occasionally emits "2.0".
type wireEnvelope struct {
	Action string `json:"action"`
}

type wireItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type wireAddToCart struct {
	Items []wireItem `json:"items"`
}

type wireHandoff struct {
	OrderItems      []wireItem `json:"order_items"`
	CustomerDetails struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Street     string `json:"street"`
		PostalCode string `json:"postal_code"`
		Email      string `json:"email"`
		References string `json:"references"`
	} `json:"customer_details"`
}

// Classify turns a raw model reply into a plain-text message or a
// recognized directive. Anything that is not a well-formed, recognized
// directive falls back to verbatim text: a parse failure is a recovery
// path, never an error.
func Classify(raw string) Reply {
	text := strings.TrimSpace(raw)
	plain := Reply{Text: text}

	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return plain
	}

	var env wireEnvelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return plain
	}

	switch env.Action {
	case "add_to_cart":
		var wire wireAddToCart
		if err := json.Unmarshal([]byte(text), &wire); err != nil || wire.Items == nil {
			return plain
		}
		return Reply{AddToCart: &AddToCart{Items: toOrderItems(wire.Items)}}

	case "prepare_whatsapp_message":
		var wire wireHandoff
		if err := json.Unmarshal([]byte(text), &wire); err != nil || wire.OrderItems == nil {
			return plain
		}
		handoff := &Handoff{OrderItems: toOrderItems(wire.OrderItems)}
		handoff.Customer.Name = wire.CustomerDetails.Name
		handoff.Customer.Phone = wire.CustomerDetails.Phone
		handoff.Customer.Street = wire.CustomerDetails.Street
		handoff.Customer.PostalCode = wire.CustomerDetails.PostalCode
		handoff.Customer.Email = wire.CustomerDetails.Email
		handoff.Customer.References = wire.CustomerDetails.References
		return Reply{Handoff: handoff}

	default:
		// Valid JSON but not a directive we know: show it as-is.
		return plain
	}
}

func toOrderItems(wire []wireItem) []OrderItem {
	items := make([]OrderItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, OrderItem{
			Name:     w.Name,
			Quantity: int(w.Quantity),
		})
	}
	return items
}
