package game

// ConfigurationError is the only error this package produces. It is
// returned by New (via Params.Validate) and never by the move methods.
type ConfigurationError struct {
	message string
}

// [ConfigurationError] implements [error]
func (e ConfigurationError) Error() string {
	return e.message
}
