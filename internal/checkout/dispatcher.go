package checkout

import (
	"fmt"
	"net/url"
	"strings"
)

// OrderLine is one itemized row of an order summary.
type OrderLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CustomerDetails are the six delivery fields the assistant collects.
type CustomerDetails struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	Email      string `json:"email"`
	References string `json:"references"`
}

// Dispatcher formats order summaries and builds the WhatsApp deep link
// the customer opens to send the order. Pure formatting; it never
// performs any network call itself.
type Dispatcher struct {
	restaurantPhone string
}

func NewDispatcher(restaurantPhone string) *Dispatcher {
	return &Dispatcher{restaurantPhone: restaurantPhone}
}

// Summary renders the fixed plain-text order template.
func (d *Dispatcher) Summary(lines []OrderLine, customer CustomerDetails) string {
	var b strings.Builder

	b.WriteString("¡Hola! Quiero hacer el siguiente pedido desde la web:\n\n")
	b.WriteString("*MI PEDIDO:*\n")

	var total float64
	for _, line := range lines {
		lineTotal := line.UnitPrice * float64(line.Quantity)
		total += lineTotal
		fmt.Fprintf(&b, "- %dx %s ($%.2f)\n", line.Quantity, line.Name, lineTotal)
	}

	fmt.Fprintf(&b, "\n*Total: $%.2f*\n\n", total)

	b.WriteString("*DATOS DE ENTREGA:*\n")
	fmt.Fprintf(&b, "*Nombre:* %s\n", customer.Name)
	fmt.Fprintf(&b, "*Celular:* %s\n", customer.Phone)
	fmt.Fprintf(&b, "*Dirección:* %s, C.P. %s\n", customer.Street, customer.PostalCode)
	fmt.Fprintf(&b, "*Email:* %s\n", customer.Email)
	fmt.Fprintf(&b, "*Referencias:* %s\n", customer.References)
	b.WriteString("\n¡Gracias!")

	return b.String()
}

// WhatsAppURL percent-encodes the summary into a wa.me deep link.
func (d *Dispatcher) WhatsAppURL(lines []OrderLine, customer CustomerDetails) string {
	encoded := url.QueryEscape(d.Summary(lines, customer))
	// encodeURIComponent-style spaces, which wa.me expects.
	encoded = strings.ReplaceAll(encoded, "+", "%20")

	return fmt.Sprintf("https://wa.me/%s?text=%s", d.restaurantPhone, encoded)
}
