package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// PreferenceRepository implements ports.PreferenceRepository over the
// key-value store.
type PreferenceRepository struct {
	store ports.KeyValueStore
}

// NewPreferenceRepository creates a new preference repository.
func NewPreferenceRepository(store ports.KeyValueStore) ports.PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// Put upserts preferences for a session wholesale.
func (r *PreferenceRepository) Put(ctx context.Context, sessionID string, prefs *domain.UserPreferences) error {
	value, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := r.store.Set(ctx, PreferencesKey(sessionID), value); err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}

	return nil
}

// Get retrieves preferences for a session, empty if absent.
func (r *PreferenceRepository) Get(ctx context.Context, sessionID string) (*domain.UserPreferences, error) {
	value, err := r.store.Get(ctx, PreferencesKey(sessionID))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return &domain.UserPreferences{Values: map[string]any{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(value, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if prefs.Values == nil {
		prefs.Values = map[string]any{}
	}

	return &prefs, nil
}

// Ensure PreferenceRepository implements ports.PreferenceRepository
var _ ports.PreferenceRepository = (*PreferenceRepository)(nil)
