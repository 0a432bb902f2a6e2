package domain

import "fmt"

// ConfigError reports a missing or malformed setting. It is fatal at startup.
type ConfigError struct {
	Variable string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Variable, e.Reason)
}

// ValidationError reports malformed caller input. Operations returning it
// have not performed any network I/O.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StoreCorruptionError reports an account file that could not be read or
// decoded on a write path.
type StoreCorruptionError struct {
	Path string
	Err  error
}

func (e *StoreCorruptionError) Error() string {
	return fmt.Sprintf("account store %s is unreadable: %v", e.Path, e.Err)
}

func (e *StoreCorruptionError) Unwrap() error {
	return e.Err
}
