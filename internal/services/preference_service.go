package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// PreferenceService implements the ports.PreferenceService interface
type PreferenceService struct {
	repo   ports.PreferenceRepository
	logger *slog.Logger
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo ports.PreferenceRepository, logger *slog.Logger) *PreferenceService {
	return &PreferenceService{
		repo:   repo,
		logger: logger.With("component", "preference_service"),
	}
}

// WritePreferences upserts a session's preferences wholesale.
func (s *PreferenceService) WritePreferences(ctx context.Context, sessionID string, values map[string]any) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.NewValidationError("sessionId", "must not be empty")
	}

	if err := s.repo.Put(ctx, sessionID, domain.NewUserPreferences(values)); err != nil {
		s.logger.Error("failed to store preferences", "session_id", sessionID, "error", err)
		return domain.ErrStorage
	}

	return nil
}

// ReadPreferences returns a session's preferences, empty if absent.
func (s *PreferenceService) ReadPreferences(ctx context.Context, sessionID string) (*domain.UserPreferences, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domain.NewValidationError("sessionId", "must not be empty")
	}

	prefs, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to read preferences", "session_id", sessionID, "error", err)
		return nil, domain.ErrStorage
	}

	return prefs, nil
}

// Ensure PreferenceService implements ports.PreferenceService
var _ ports.PreferenceService = (*PreferenceService)(nil)
