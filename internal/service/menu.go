package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
)

var ErrNotSerializable = repository.ErrNotSerializable

type MenuEntryRepository interface {
	Create(ctx context.Context, entry domain.MenuEntry) (domain.MenuEntry, error)
	FindByDate(ctx context.Context, date string) (domain.MenuEntry, error)
	FindAll(ctx context.Context) ([]domain.MenuEntry, error)
	Update(ctx context.Context, entry domain.MenuEntry) (domain.MenuEntry, error)
}

type MenuService struct {
	repo MenuEntryRepository
	bus  *events.Bus
}

func NewMenuService(repo MenuEntryRepository, bus *events.Bus) *MenuService {
	return &MenuService{
		repo: repo,
		bus:  bus,
	}
}

// SaveMenu upserts the entry for its date: one menu per calendar date,
// saving again replaces the dishes.
func (s *MenuService) SaveMenu(ctx context.Context, entry domain.MenuEntry) (domain.MenuEntry, error) {
	existing, err := s.repo.FindByDate(ctx, entry.Date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return domain.MenuEntry{}, fmt.Errorf("s.repo.FindByDate -> %w", err)
		}

		created, err := s.repo.Create(ctx, entry)
		if err != nil {
			return domain.MenuEntry{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		s.bus.Publish(events.Event{Collection: "menu_entries", Op: events.OpCreated, ID: created.ID})

		return created, nil
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return domain.MenuEntry{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.bus.Publish(events.Event{Collection: "menu_entries", Op: events.OpUpdated, ID: updated.ID})

	return updated, nil
}

func (s *MenuService) GetMenuByDate(ctx context.Context, date string) (domain.MenuEntry, error) {
	entry, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return domain.MenuEntry{}, fmt.Errorf("s.repo.FindByDate -> %w", err)
	}

	return entry, nil
}

func (s *MenuService) ListMenus(ctx context.Context) ([]domain.MenuEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return entries, nil
}
