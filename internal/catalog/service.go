package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var spanishDays = [7]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// DayName returns the Spanish day name the menu documents use.
func DayName(t time.Time) string {
	return spanishDays[t.Weekday()]
}

type Service struct {
	repo Repository
	log  *logrus.Logger
}

func NewService(repo Repository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Snapshot returns the current item set. Chat sessions capture one at
// open time so resolution and the system instruction stay consistent
// for the whole conversation.
func (s *Service) Snapshot(ctx context.Context) ([]MenuItem, error) {
	return s.repo.ListAll(ctx)
}

// ForDay filters the catalog down to what is orderable on the given
// date: dishes tagged with that day or with the every-day sentinel.
func (s *Service) ForDay(ctx context.Context, t time.Time) ([]MenuItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	day := DayName(t)
	var today []MenuItem
	for _, item := range items {
		if item.Day == day || item.Day == DayEveryDay {
			today = append(today, item)
		}
	}

	return today, nil
}

// Featured returns the always-available specialty dishes.
func (s *Service) Featured(ctx context.Context) ([]MenuItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var featured []MenuItem
	for _, item := range items {
		if item.Category == CategorySpecial {
			featured = append(featured, item)
		}
	}

	return featured, nil
}

func (s *Service) Upsert(ctx context.Context, item *MenuItem) error {
	if item.Name == "" {
		return errors.New("name is required")
	}
	if item.Price < 0 {
		return errors.New("price must not be negative")
	}
	if item.Day == "" {
		item.Day = DayEveryDay
	}
	return s.repo.Upsert(ctx, item)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) SetImageURL(ctx context.Context, id, url string) error {
	return s.repo.SetImageURL(ctx, id, url)
}

// Resolve matches a dish name against an item set, case-insensitively
// and exactly. A blank name never matches. Unmatched names are the
// caller's signal to log and skip, never to invent a phantom line.
func Resolve(items []MenuItem, name string) (MenuItem, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MenuItem{}, false
	}

	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}

	return MenuItem{}, false
}
