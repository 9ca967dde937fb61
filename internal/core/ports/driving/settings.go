package driving

import "github.com/custodia-labs/legis-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, environment overrides applied.
	Get() (*domain.AppSettings, error)

	// Set updates one setting by key and persists it.
	Set(key, value string) error

	// Keys returns the settable keys, sorted.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
