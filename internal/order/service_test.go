package order

import (
	"context"
	"testing"

	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
)

func TestPlace_ComputesTotal(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	lines := []checkout.OrderLine{
		{Name: "Torta Ahogada", Quantity: 1, UnitPrice: 110.00},
		{Name: "Agua de Jamaica", Quantity: 2, UnitPrice: 40.00},
	}

	o, err := service.Place(context.Background(), ChannelWeb, lines, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Total != 190.00 {
		t.Errorf("expected total 190.00, got %.2f", o.Total)
	}
	if o.ID == "" {
		t.Error("expected an assigned id")
	}
	if o.Channel != ChannelWeb {
		t.Errorf("unexpected channel: %q", o.Channel)
	}
	if o.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

func TestPlace_RejectsEmptyOrder(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.Place(context.Background(), ChannelWeb, nil, nil); err == nil {
		t.Error("expected an error for an order without items")
	}
}

func TestList_NewestFirst(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	first, err := service.Place(context.Background(), ChannelWeb, []checkout.OrderLine{
		{Name: "Pozole Rojo", Quantity: 1, UnitPrice: 95.00},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := service.Place(context.Background(), ChannelWhatsApp, []checkout.OrderLine{
		{Name: "Torta Ahogada", Quantity: 2, UnitPrice: 110.00},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Error("orders not listed newest first")
	}
}

func TestRecord_ArchivesWhatsAppOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	customer := checkout.CustomerDetails{Name: "Juan Pérez", Phone: "5512345678"}
	err := service.Record(context.Background(), []checkout.OrderLine{
		{Name: "Agua de Jamaica", Quantity: 1, UnitPrice: 40.00},
	}, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].Channel != ChannelWhatsApp {
		t.Errorf("expected whatsapp channel, got %q", orders[0].Channel)
	}
	if orders[0].Customer == nil || orders[0].Customer.Name != "Juan Pérez" {
		t.Errorf("customer details not archived: %+v", orders[0].Customer)
	}
}
