package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Place records an order in the archive.
func (s *Service) Place(
	ctx context.Context,
	channel string,
	lines []checkout.OrderLine,
	customer *checkout.CustomerDetails,
) (*Order, error) {

	if len(lines) == 0 {
		return nil, errors.New("order has no items")
	}

	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}

	o := &Order{
		ID:        uuid.New().String(),
		Channel:   channel,
		Lines:     lines,
		Total:     total,
		Customer:  customer,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// Record archives a WhatsApp handoff produced by the chat assistant.
// Satisfies the chat engine's OrderRecorder.
func (s *Service) Record(
	ctx context.Context,
	lines []checkout.OrderLine,
	customer checkout.CustomerDetails,
) error {
	_, err := s.Place(ctx, ChannelWhatsApp, lines, &customer)
	return err
}
