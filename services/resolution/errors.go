package resolution

import "fmt"

// ParseError reports a malformed time or date string. It is fatal to
// the specific parse call and must be handled by the caller.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func newParseError(input, reason string) error {
	return &ParseError{Input: input, Reason: reason}
}

// ExternalCallFailure reports a text generation call that failed, timed
// out, or returned unusable output. It is absorbed inside the pipeline
// via fallback substitution and never reaches the end user.
type ExternalCallFailure struct {
	Stage string
	Err   error
}

func (e *ExternalCallFailure) Error() string {
	return fmt.Sprintf("%s: external call failed: %v", e.Stage, e.Err)
}

func (e *ExternalCallFailure) Unwrap() error {
	return e.Err
}

// ConfigurationError reports missing or invalid operator-supplied
// configuration, such as pricing rates or the placeholder booking
// window. It is the only error class allowed to terminate a
// resolution, since no meaningful outcome can be computed from bad
// settings.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

func newConfigurationError(field, msg string) error {
	return &ConfigurationError{Field: field, Message: msg}
}
