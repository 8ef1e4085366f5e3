package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrMissingCredential is wrapped by ConfigError when the API key variable is unset.
	ErrMissingCredential = errors.New("missing API key")
	// ErrEmptyQuery rejects blank task strings before any work is done.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrCommandBlocked is returned when a guardrail rule refuses execution.
	ErrCommandBlocked = errors.New("command blocked by guardrail")
	// ErrNoCommand is returned in execute mode when the model declined to produce a command.
	ErrNoCommand = errors.New("model did not produce a command")
)

// ConfigError reports a configuration problem detected before any network activity.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TransportError wraps DNS, TLS and connection failures of the single API call.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is an application-level failure: a non-success HTTP status or an
// error object inside an otherwise well-formed reply. StatusCode is zero for
// the latter. Type and Message come from the body's error object when it has
// one; Body always keeps the raw reply.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	Body       string
}

// Error renders "API error (401 authentication_error): invalid x-api-key"
// when the body carried a structured error, and the raw body otherwise.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	status := strconv.Itoa(e.StatusCode)
	if e.Type != "" {
		status += " " + e.Type
	}
	detail := e.Message
	if detail == "" {
		detail = strings.TrimSpace(e.Body)
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("API error (%s): %s", status, detail)
}

// DecodeError reports a response body that does not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
