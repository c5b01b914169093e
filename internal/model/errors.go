package model

import "fmt"

// ConfigError signals missing or invalid startup configuration, including
// absent default input files.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("configuration: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// InputError signals an unreadable, undecodable, or unparsable resume or
// job-description input.
type InputError struct {
	Source string // file path, empty for literal text
	Err    error
}

func (e *InputError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("input %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("input: %v", e.Err)
}
func (e *InputError) Unwrap() error { return e.Err }

// AuthError signals a missing API key or a credential rejected by the
// remote service.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("authentication: %v", e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// RateLimitError signals that the remote service reported throttling.
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string { return fmt.Sprintf("rate limited: %v", e.Err) }
func (e *RateLimitError) Unwrap() error { return e.Err }

// RemoteError covers every other remote failure: non-2xx responses that are
// neither auth nor throttling, and malformed response bodies.
type RemoteError struct {
	StatusCode int // zero when the failure happened without an HTTP status
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote service: HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote service: %v", e.Err)
}
func (e *RemoteError) Unwrap() error { return e.Err }

// OutputError signals that the generated letter could not be written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *OutputError) Unwrap() error { return e.Err }
