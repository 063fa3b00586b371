package errors

import "fmt"

// ValidationError reports a local pre-flight check failure. A record that
// fails validation is never sent over the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// UnmappedFieldError reports an attempt to serialize a domain field that has
// no remote mapping in the active profile. This is a configuration error and
// is deliberately loud rather than silently dropping the field.
type UnmappedFieldError struct {
	Field   string
	Profile string
}

func (e *UnmappedFieldError) Error() string {
	return fmt.Sprintf("field %q has no mapping in profile %q", e.Field, e.Profile)
}

// AuthError reports a missing, expired, or rejected credential. Callers can
// catch it to re-route the user to re-authentication; it is distinct from
// RemoteError so the two failure modes are never conflated.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RemoteError reports a remote call that completed but signaled failure.
// The core never retries; retry policy is a caller concern.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote service returned status %d: %s", e.StatusCode, e.Message)
}

// NotFoundError reports a 404-equivalent response for a direct id lookup.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
