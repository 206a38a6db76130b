package carousel

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrConfiguration = errors.New("carousel configuration error")
	ErrNoAction      = errors.New("carousel has no action strings")
)

// ConfigurationError reports why a carousel could not be initialized
// Path is the offending resource path when the failure came from expansion
// Err is the underlying resolver failure, if any
type ConfigurationError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%v: %s: %s", ErrConfiguration, e.Path, msg)
	}
	return fmt.Sprintf("%v: %s", ErrConfiguration, msg)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is matches ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(path, format string, args ...any) error {
	return &ConfigurationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
