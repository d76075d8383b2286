package domain

import "time"

// UserPreferences holds free-form, non-PII preferences for an opaque session.
// Writes replace the whole record.
type UserPreferences struct {
	Values    map[string]any `json:"values"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewUserPreferences wraps the given values with a fresh UpdatedAt.
func NewUserPreferences(values map[string]any) *UserPreferences {
	if values == nil {
		values = map[string]any{}
	}
	return &UserPreferences{
		Values:    values,
		UpdatedAt: time.Now().UTC(),
	}
}
