package services

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAPIKey            = "api.key"
	KeyBaseURL           = "api.base_url"
	KeyRequestsPerSecond = "api.requests_per_second"
	KeyJurisdiction      = "legislature.jurisdiction"
	KeySessionPolicy     = "legislature.session_policy"
	KeyCommitteesFile    = "committees.file"
)

// Environment variables overriding the config file.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvAPIKey       = "LEGISCAN_API_KEY"
	EnvBaseURL      = "LEGISCAN_BASE_URL"
	EnvJurisdiction = "LEGIS_JURISDICTION"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Environment variables take
// precedence over stored values, which take precedence over defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			Key:               envStr(EnvAPIKey, s.configStore.GetString(KeyAPIKey)),
			BaseURL:           envStr(EnvBaseURL, s.getString(KeyBaseURL, defaults.API.BaseURL)),
			RequestsPerSecond: s.getRate(),
		},
		Legislature: domain.LegislatureSettings{
			Jurisdiction:  strings.ToUpper(envStr(EnvJurisdiction, s.getString(KeyJurisdiction, defaults.Legislature.Jurisdiction))),
			SessionPolicy: s.getSessionPolicy(defaults.Legislature.SessionPolicy),
		},
		Committees: domain.CommitteeSettings{
			File: s.configStore.GetString(KeyCommitteesFile),
		},
	}

	return settings, nil
}

// Set validates and stores one setting. An empty value removes the key,
// restoring its default.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	if value == "" {
		if !slices.Contains(s.Keys(), key) {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
		return s.configStore.Unset(key)
	}

	switch key {
	case KeyAPIKey, KeyCommitteesFile:
		return s.configStore.Set(key, value)

	case KeyBaseURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)

	case KeyRequestsPerSecond:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, rps)

	case KeyJurisdiction:
		if !isStateCode(value) {
			return fmt.Errorf("%w: %s must be a two-letter state code", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, strings.ToUpper(value))

	case KeySessionPolicy:
		policy := domain.SessionPolicy(strings.ToLower(value))
		if !policy.IsValid() {
			return fmt.Errorf("%w: %s must be %q or %q", domain.ErrInvalidInput, key,
				domain.SessionPolicyFirst, domain.SessionPolicyLatest)
		}
		return s.configStore.Set(key, policy.String())

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the settable keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyAPIKey,
		KeyBaseURL,
		KeyRequestsPerSecond,
		KeyJurisdiction,
		KeySessionPolicy,
		KeyCommitteesFile,
	}
	slices.Sort(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getRate() float64 {
	if rps := s.configStore.GetFloat(KeyRequestsPerSecond); rps > 0 {
		return rps
	}
	return 0
}

func (s *SettingsService) getSessionPolicy(defaultVal domain.SessionPolicy) domain.SessionPolicy {
	policy := domain.SessionPolicy(s.configStore.GetString(KeySessionPolicy))
	if policy.IsValid() {
		return policy
	}
	return defaultVal
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
