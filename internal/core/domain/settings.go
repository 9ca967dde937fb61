package domain

// Default settings values.
const (
	DefaultBaseURL      = "https://api.legiscan.com"
	DefaultJurisdiction = "KS"
)

// APISettings configures access to the upstream legislative API.
type APISettings struct {
	// Key is the API credential. It is never shipped in source.
	Key string

	// BaseURL is the API endpoint.
	BaseURL string

	// RequestsPerSecond throttles outgoing requests; 0 disables throttling.
	RequestsPerSecond float64
}

// HasKey reports whether a credential is configured.
func (a APISettings) HasKey() bool {
	return a.Key != ""
}

// LegislatureSettings selects which legislature to browse.
type LegislatureSettings struct {
	// Jurisdiction is the state code, e.g. "KS".
	Jurisdiction string

	// SessionPolicy chooses the current session.
	SessionPolicy SessionPolicy
}

// CommitteeSettings configures the committee recipient directory.
type CommitteeSettings struct {
	// File is an optional TOML file overriding the built-in directory.
	File string
}

// AppSettings holds all application settings.
type AppSettings struct {
	API         APISettings
	Legislature LegislatureSettings
	Committees  CommitteeSettings
}

// DefaultAppSettings returns settings with default values.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL: DefaultBaseURL,
		},
		Legislature: LegislatureSettings{
			Jurisdiction:  DefaultJurisdiction,
			SessionPolicy: SessionPolicyFirst,
		},
	}
}

// MaskedKey returns the credential with all but the last four characters hidden.
func (a APISettings) MaskedKey() string {
	if len(a.Key) <= 4 {
		if a.Key == "" {
			return ""
		}
		return "****"
	}
	return "****" + a.Key[len(a.Key)-4:]
}
