package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("api.base_url"); implementations handle
// persistence and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty if absent or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 if absent or not an integer.
	GetInt(key string) int

	// GetFloat retrieves a number value, 0 if absent or not a number.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, false if absent or not a boolean.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Unset removes a key and persists immediately.
	Unset(key string) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
