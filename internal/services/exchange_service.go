package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// ExchangeService implements the ports.ExchangeService interface
type ExchangeService struct {
	repo    ports.ExchangeRepository
	metrics ports.MetricsService
	logger  *slog.Logger
}

// NewExchangeService creates a new exchange profile service
func NewExchangeService(repo ports.ExchangeRepository, metrics ports.MetricsService, logger *slog.Logger) *ExchangeService {
	return &ExchangeService{
		repo:    repo,
		metrics: metrics,
		logger:  logger.With("component", "exchange_service"),
	}
}

// WriteInfo upserts a profile wholesale. UpdatedAt is always refreshed to the
// time of this call, never preserved from an earlier write.
func (s *ExchangeService) WriteInfo(ctx context.Context, profile *domain.ExchangeProfile) error {
	profile.Name = strings.TrimSpace(profile.Name)

	if err := profile.Validate(); err != nil {
		return err
	}

	profile.Touch()

	if err := s.repo.Put(ctx, profile); err != nil {
		s.logger.Error("failed to store exchange profile", "name", profile.Name, "error", err)
		return domain.ErrStorage
	}

	s.metrics.RecordWrite("exchange")
	s.logger.Info("exchange profile stored", "name", profile.Name)
	return nil
}

// ReadInfo returns a profile by name.
func (s *ExchangeService) ReadInfo(ctx context.Context, name string) (*domain.ExchangeProfile, error) {
	name = strings.TrimSpace(name)

	profile, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrExchangeNotFound) {
			return nil, err
		}
		s.logger.Error("failed to read exchange profile", "name", name, "error", err)
		return nil, domain.ErrStorage
	}

	s.metrics.RecordRead("exchange")
	return profile, nil
}

// ListInfo returns all stored profiles.
func (s *ExchangeService) ListInfo(ctx context.Context) ([]*domain.ExchangeProfile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list exchange profiles", "error", err)
		return nil, domain.ErrStorage
	}

	s.metrics.RecordRead("exchange")
	return profiles, nil
}

// Ensure ExchangeService implements ports.ExchangeService
var _ ports.ExchangeService = (*ExchangeService)(nil)
