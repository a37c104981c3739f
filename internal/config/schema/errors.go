package schema

import "fmt"

// ValidationError describes the first schema violation found in a
// configuration tree. Validation is fail-fast: the error identifies a
// single offending section and key.
type ValidationError struct {
	// Section is the top-level section the violation was found in.
	Section string
	// Key is the offending key within the section, if one applies.
	Key string
	// Message describes the violation.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid configuration: %s.%s: %s", e.Section, e.Key, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Section, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func fail(section, key, format string, args ...any) *ValidationError {
	return &ValidationError{
		Section: section,
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	}
}

func failErr(section, key string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Section: section,
		Key:     key,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
