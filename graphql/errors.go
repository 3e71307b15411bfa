package graphql

import (
	"bytes"
	"fmt"
)

// BuildError reports a programmer fault discovered while assembling a
// Registry: a missing query root, a dangling type reference, a malformed
// federation key. Build errors are fatal — callers that receive one must
// not attempt to serve requests against the partially built result.
type BuildError struct {
	TypeName string
	inner    error
}

func NewBuildError(typeName string, format string, a ...interface{}) *BuildError {
	return &BuildError{TypeName: typeName, inner: fmt.Errorf(format, a...)}
}

func (e *BuildError) Error() string {
	if e.TypeName == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%s: %s", e.TypeName, e.inner.Error())
}

func (e *BuildError) Unwrap() error { return e.inner }

const maxPathDepth = 100

// SanitizedError is implemented by serve-time errors whose message is
// already safe to return to a client. Any error that does not implement it
// is assumed to carry internal detail and is replaced with a generic
// message before leaving the registry's boundary.
type SanitizedError interface {
	error
	SanitizedError() string
}

// ClientError is a message written for, and always safe to show to, a
// client: a malformed argument, a not-found lookup, a permission check.
type ClientError struct {
	Code    string
	message string
}

func NewClientError(format string, a ...interface{}) ClientError {
	return ClientError{message: fmt.Sprintf(format, a...)}
}

// NewCodedClientError attaches a machine-readable Code alongside the
// human-readable message, surfaced in FieldErrorPayload.Code.
func NewCodedClientError(code, format string, a ...interface{}) ClientError {
	return ClientError{Code: code, message: fmt.Sprintf(format, a...)}
}

func (e ClientError) Error() string          { return e.message }
func (e ClientError) SanitizedError() string { return e.message }

// SafeError wraps an internal error with a client-safe message, keeping the
// original error reachable via Unwrap for logging without ever exposing its
// text to a client.
type SafeError struct {
	inner   error
	message string
}

// WrapAsSafeError wraps err with a message safe to return to a client.
func WrapAsSafeError(err error, format string, a ...interface{}) SafeError {
	return SafeError{inner: err, message: fmt.Sprintf(format, a...)}
}

func (e SafeError) Error() string          { return e.message }
func (e SafeError) SanitizedError() string { return e.message }
func (e SafeError) Unwrap() error          { return e.inner }

// SanitizeError returns the message a client may see for err: its own
// message if it implements SanitizedError, otherwise a generic fallback
// that leaks nothing about the underlying cause.
func SanitizeError(err error) string {
	if sanitized, ok := err.(SanitizedError); ok {
		return sanitized.SanitizedError()
	}
	return "internal server error"
}

// fieldPathError nests a resolver error under the field path at which it
// occurred, innermost field first, so that NestFieldError calls compose as
// resolution unwinds back up the selection tree.
type fieldPathError struct {
	inner error
	path  []string
}

// NestFieldError records that err occurred while resolving the field named
// key, prepending key to any path already recorded on err. A SanitizedError
// is never nested further: once an error carries a client-facing message,
// the path that produced it is no longer interesting to the client.
func NestFieldError(key string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(SanitizedError); ok {
		return err
	}
	if pe, ok := err.(*fieldPathError); ok {
		return &fieldPathError{inner: pe.inner, path: append(pe.path, key)}
	}
	return &fieldPathError{inner: err, path: []string{key}}
}

// Path returns the field path that produced err, outermost field first, or
// nil if err was never nested.
func (pe *fieldPathError) Path() []string {
	path := make([]string, len(pe.path))
	for i, key := range pe.path {
		path[len(pe.path)-1-i] = key
	}
	return path
}

func (pe *fieldPathError) Unwrap() error { return pe.inner }

func (pe *fieldPathError) Error() string {
	var buf bytes.Buffer
	path := pe.Path()
	for i, key := range path {
		if i > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(key)
	}
	buf.WriteString(": ")
	buf.WriteString(pe.inner.Error())
	return buf.String()
}

// causeOf unwinds nested path errors to the error that originally occurred,
// stopping at maxPathDepth to bound the work done against a pathological
// resolver that nests an error under itself.
func causeOf(err error) error {
	for depth := 0; depth < maxPathDepth; depth++ {
		pe, ok := err.(*fieldPathError)
		if !ok {
			return err
		}
		err = pe.inner
	}
	return err
}

// FieldErrorPayload is the client-facing shape of a single resolver error:
// its sanitized message, the field path it occurred at, and an optional
// machine-readable code. It carries no JSON tags of its own opinion on
// serialization format — the transport layer that owns wire encoding
// chooses that.
type FieldErrorPayload struct {
	Message string
	Path    []string
	Code    string
}

// ToFieldErrorPayload converts a resolver error into its client-facing
// payload, sanitizing the message and recovering the field path recorded by
// NestFieldError.
func ToFieldErrorPayload(err error) FieldErrorPayload {
	var path []string
	if pe, ok := err.(*fieldPathError); ok {
		path = pe.Path()
	}
	cause := causeOf(err)
	payload := FieldErrorPayload{
		Message: SanitizeError(cause),
		Path:    path,
	}
	if ce, ok := cause.(ClientError); ok {
		payload.Code = ce.Code
	}
	return payload
}
