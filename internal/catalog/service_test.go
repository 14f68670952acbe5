package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testItems() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Torta Ahogada", Price: 110.00, Category: "Comida", Day: DayEveryDay},
		{ID: "2", Name: "Chilaquiles Rojos", Price: 95.00, Category: "Desayuno", Day: "Lunes"},
		{ID: "3", Name: "Pozole Rojo", Price: 120.00, Category: CategorySpecial, Day: DayEveryDay},
	}
}

func newTestService() *Service {
	log := logrus.New()
	return NewService(NewInMemoryRepository(testItems()), log)
}

func TestResolve_CaseInsensitiveExactMatch(t *testing.T) {
	items := testItems()

	item, ok := Resolve(items, "torta ahogada")
	if !ok {
		t.Fatal("expected a match")
	}
	if item.ID != "1" {
		t.Errorf("resolved wrong item: %s", item.Name)
	}
}

func TestResolve_NoPartialMatch(t *testing.T) {
	if _, ok := Resolve(testItems(), "Torta"); ok {
		t.Error("partial name must not match")
	}
}

func TestResolve_BlankNameNeverMatches(t *testing.T) {
	if _, ok := Resolve(testItems(), ""); ok {
		t.Error("blank name must not match")
	}
	if _, ok := Resolve(testItems(), "   "); ok {
		t.Error("whitespace name must not match")
	}
}

func TestForDay_FiltersByDayAndSentinel(t *testing.T) {
	service := newTestService()

	// 2026-08-24 is a Monday ("Lunes").
	monday := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	items, err := service.ForDay(context.Background(), monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected all 3 items on Monday, got %d", len(items))
	}

	tuesday := monday.AddDate(0, 0, 1)
	items, err = service.ForDay(context.Background(), tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 every-day items on Tuesday, got %d", len(items))
	}
	for _, item := range items {
		if item.Day != DayEveryDay {
			t.Errorf("unexpected item on Tuesday: %s (%s)", item.Name, item.Day)
		}
	}
}

func TestFeatured_ReturnsSpecialsOnly(t *testing.T) {
	service := newTestService()

	featured, err := service.Featured(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(featured) != 1 || featured[0].Name != "Pozole Rojo" {
		t.Errorf("expected only Pozole Rojo, got %+v", featured)
	}
}

func TestUpsert_RejectsInvalidItems(t *testing.T) {
	service := newTestService()

	if err := service.Upsert(context.Background(), &MenuItem{Price: 10}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := service.Upsert(context.Background(), &MenuItem{Name: "Flan", Price: -1}); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestUpsert_DefaultsDayAndAssignsID(t *testing.T) {
	service := newTestService()

	item := MenuItem{Name: "Flan Napolitano", Price: 45}
	if err := service.Upsert(context.Background(), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if item.Day != DayEveryDay {
		t.Errorf("expected every-day default, got %q", item.Day)
	}
}
