package checkout

import (
	"net/url"
	"strings"
	"testing"
)

func sampleOrder() ([]OrderLine, CustomerDetails) {
	lines := []OrderLine{
		{Name: "Torta Ahogada", Quantity: 1, UnitPrice: 110.00},
		{Name: "Agua de Jamaica", Quantity: 2, UnitPrice: 40.00},
	}
	customer := CustomerDetails{
		Name:       "Juan Pérez",
		Phone:      "5512345678",
		Street:     "Calle Falsa 123",
		PostalCode: "06000",
		Email:      "juan@example.com",
		References: "portón negro",
	}
	return lines, customer
}

func TestSummary(t *testing.T) {
	d := NewDispatcher("5213148721913")
	lines, customer := sampleOrder()

	summary := d.Summary(lines, customer)

	for _, want := range []string{
		"¡Hola! Quiero hacer el siguiente pedido desde la web:",
		"*MI PEDIDO:*",
		"- 1x Torta Ahogada ($110.00)",
		"- 2x Agua de Jamaica ($80.00)",
		"*Total: $190.00*",
		"*DATOS DE ENTREGA:*",
		"*Nombre:* Juan Pérez",
		"*Celular:* 5512345678",
		"*Dirección:* Calle Falsa 123, C.P. 06000",
		"*Email:* juan@example.com",
		"*Referencias:* portón negro",
		"¡Gracias!",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestSummary_EmptyCart(t *testing.T) {
	d := NewDispatcher("5213148721913")

	summary := d.Summary(nil, CustomerDetails{Name: "Juan"})

	if !strings.Contains(summary, "*Total: $0.00*") {
		t.Errorf("empty order should total zero:\n%s", summary)
	}
}

func TestWhatsAppURL(t *testing.T) {
	d := NewDispatcher("5213148721913")
	lines, customer := sampleOrder()

	link := d.WhatsAppURL(lines, customer)

	if !strings.HasPrefix(link, "https://wa.me/5213148721913?text=") {
		t.Fatalf("unexpected link: %q", link)
	}
	if strings.Contains(link, "+") {
		t.Error("spaces must encode as %20, not +")
	}
	if !strings.Contains(link, "%20") {
		t.Error("expected %20-encoded spaces in the link")
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	decoded := parsed.Query().Get("text")
	if decoded != d.Summary(lines, customer) {
		t.Errorf("decoded text does not round-trip:\n%s", decoded)
	}
}
