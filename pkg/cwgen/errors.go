// ABOUTME: Configuration error type for the pipeline facade
// ABOUTME: Names the offending option and why it was rejected
package cwgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration matches any *InvalidConfigurationError
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidConfigurationError reports an option outside its valid domain
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func invalid(field, format string, args ...any) error {
	return &InvalidConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
