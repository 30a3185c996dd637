package api

// ConfigurationError indicates a missing API credential at client
// construction time, before any network call is made
type ConfigurationError struct {
	Provider string
}

func (e *ConfigurationError) Error() string {
	return e.Provider + " API key is required"
}
