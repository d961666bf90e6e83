package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
)

type AdminRepository interface {
	FactoryReset(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int, error)
}

type AdminService struct {
	repo AdminRepository
	bus  *events.Bus
}

func NewAdminService(repo AdminRepository, bus *events.Bus) *AdminService {
	return &AdminService{
		repo: repo,
		bus:  bus,
	}
}

// FactoryReset destroys every collection and re-migrates from scratch. It
// either completes or fails visibly as a single administrative action.
func (s *AdminService) FactoryReset(ctx context.Context) error {
	if err := s.repo.FactoryReset(ctx); err != nil {
		return fmt.Errorf("s.repo.FactoryReset -> %w", err)
	}

	zap.L().Warn("store factory reset completed")
	s.bus.Publish(events.Event{Collection: "*", Op: events.OpReset})

	return nil
}

func (s *AdminService) SchemaVersion(ctx context.Context) (int, error) {
	version, err := s.repo.SchemaVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.SchemaVersion -> %w", err)
	}

	return version, nil
}
