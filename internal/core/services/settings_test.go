package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legis-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// clearEnv unsets the override variables for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvJurisdiction, "")
}

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	clearEnv(t)
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, service.GetDefaults(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	clearEnv(t)
	store := memory.NewConfigStore()
	_ = store.Set(KeyAPIKey, "stored-key")
	_ = store.Set(KeyBaseURL, "https://legiscan.example.test")
	_ = store.Set(KeyRequestsPerSecond, 2.5)
	_ = store.Set(KeyJurisdiction, "mo")
	_ = store.Set(KeySessionPolicy, "latest")
	_ = store.Set(KeyCommitteesFile, "/tmp/committees.toml")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, "stored-key", settings.API.Key)
	assert.Equal(t, "https://legiscan.example.test", settings.API.BaseURL)
	assert.Equal(t, 2.5, settings.API.RequestsPerSecond)
	assert.Equal(t, "MO", settings.Legislature.Jurisdiction)
	assert.Equal(t, domain.SessionPolicyLatest, settings.Legislature.SessionPolicy)
	assert.Equal(t, "/tmp/committees.toml", settings.Committees.File)
}

func TestSettingsService_Get_EnvironmentOverrides(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyAPIKey, "stored-key")
	_ = store.Set(KeyJurisdiction, "MO")

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBaseURL, "http://localhost:8080")
	t.Setenv(EnvJurisdiction, "ne")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, "env-key", settings.API.Key)
	assert.Equal(t, "http://localhost:8080", settings.API.BaseURL)
	assert.Equal(t, "NE", settings.Legislature.Jurisdiction)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	clearEnv(t)
	store := memory.NewConfigStore()
	_ = store.Set(KeySessionPolicy, "newest")
	_ = store.Set(KeyRequestsPerSecond, -3.0)

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, domain.SessionPolicyFirst, settings.Legislature.SessionPolicy)
	assert.Zero(t, settings.API.RequestsPerSecond)
}

func TestSettingsService_Set_Valid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyAPIKey, " abc123 "))
	require.NoError(t, service.Set(KeyBaseURL, "https://api.legiscan.com"))
	require.NoError(t, service.Set(KeyRequestsPerSecond, "1.5"))
	require.NoError(t, service.Set(KeyJurisdiction, "ks"))
	require.NoError(t, service.Set(KeySessionPolicy, "LATEST"))
	require.NoError(t, service.Set(KeyCommitteesFile, "~/committees.toml"))

	assert.Equal(t, "abc123", store.GetString(KeyAPIKey))
	assert.Equal(t, 1.5, store.GetFloat(KeyRequestsPerSecond))
	assert.Equal(t, "KS", store.GetString(KeyJurisdiction))
	assert.Equal(t, "latest", store.GetString(KeySessionPolicy))
}

func TestSettingsService_Set_EmptyUnsets(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyAPIKey, "abc123"))
	require.NoError(t, service.Set(KeyAPIKey, ""))

	_, ok := store.Get(KeyAPIKey)
	assert.False(t, ok)
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		key   string
		value string
	}{
		{KeyBaseURL, "ftp://example.com"},
		{KeyBaseURL, "not a url"},
		{KeyRequestsPerSecond, "fast"},
		{KeyRequestsPerSecond, "-1"},
		{KeyJurisdiction, "Kansas"},
		{KeyJurisdiction, "K1"},
		{KeySessionPolicy, "newest"},
		{"search.mode", "hybrid"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, service.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, 6)
	assert.IsNonDecreasing(t, keys)
	assert.Contains(t, keys, KeyAPIKey)
}

func TestSettingsService_Set_EmptyRestoresDefault(t *testing.T) {
	clearEnv(t)
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyJurisdiction, "NE"))
	require.NoError(t, service.Set(KeyJurisdiction, " "))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultJurisdiction, settings.Legislature.Jurisdiction)

	assert.ErrorIs(t, service.Set("search.mode", ""), domain.ErrInvalidInput)
}
