package model

import (
	"context"
	"errors"
	"net"
	"net/http"

	"weather-dash/pkg/msg"
)

// ErrorKind is the classification of a failed weather query.
type ErrorKind string

const (
	KindMissingCredential  ErrorKind = "missing-credential"
	KindValidation         ErrorKind = "validation"
	KindTimeout            ErrorKind = "timeout"
	KindNetwork            ErrorKind = "network"
	KindNotFound           ErrorKind = "not-found"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindRateLimited        ErrorKind = "rate-limited"
	KindServiceUnavailable ErrorKind = "service-unavailable"
	KindHTTP               ErrorKind = "http"
)

// QueryError pairs a classification with the human-readable message shown
// on the dashboard. Status carries the HTTP status code when one was
// received.
type QueryError struct {
	Kind    ErrorKind `json:"kind"`
	Status  int       `json:"status,omitempty"`
	Message string    `json:"message"`
}

func (e *QueryError) Error() string {
	return e.Message
}

// Retryable reports whether an identical retry can plausibly succeed
// without the user changing anything but the timing.
func (e *QueryError) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindNetwork, KindRateLimited, KindServiceUnavailable, KindHTTP:
		return true
	default:
		return false
	}
}

// NewMissingCredentialError reports the absent API key precondition.
func NewMissingCredentialError() *QueryError {
	return &QueryError{
		Kind:    KindMissingCredential,
		Message: msg.GetMessageOrDefault("weather.err.missing-key", "Weather API key is not configured. Add WEATHER_API_KEY to the environment."),
	}
}

// NewValidationError reports a rejected city query before any network I/O.
func NewValidationError(reason string) *QueryError {
	return &QueryError{
		Kind:    KindValidation,
		Message: reason,
	}
}

// Classify maps a primary-call failure signal to a QueryError, in the
// fixed priority order: timeout, transport failure, then status code.
func Classify(city string, status int, err error) *QueryError {
	if isTimeout(err) {
		return &QueryError{
			Kind:    KindTimeout,
			Message: msg.GetMessageOrDefault("weather.err.timeout", "The weather service took too long to respond. Please try again."),
		}
	}

	if status == 0 {
		return &QueryError{
			Kind:    KindNetwork,
			Message: msg.GetMessageOrDefault("weather.err.network", "Could not reach the weather service. Check your connection and try again."),
		}
	}

	switch {
	case status == http.StatusNotFound:
		return &QueryError{
			Kind:    KindNotFound,
			Status:  status,
			Message: msg.GetMessageOrDefault("weather.err.not-found", "City \"{0}\" not found. Please check the spelling and try again.", city),
		}
	case status == http.StatusUnauthorized:
		return &QueryError{
			Kind:    KindUnauthorized,
			Status:  status,
			Message: msg.GetMessageOrDefault("weather.err.unauthorized", "Invalid API key. Please check your configuration."),
		}
	case status == http.StatusTooManyRequests:
		return &QueryError{
			Kind:    KindRateLimited,
			Status:  status,
			Message: msg.GetMessageOrDefault("weather.err.rate-limited", "Too many requests. Please wait a moment and try again."),
		}
	case status >= 500:
		return &QueryError{
			Kind:    KindServiceUnavailable,
			Status:  status,
			Message: msg.GetMessageOrDefault("weather.err.unavailable", "The weather service is currently unavailable. Please try again later."),
		}
	default:
		return &QueryError{
			Kind:    KindHTTP,
			Status:  status,
			Message: msg.GetMessageOrDefault("weather.err.http", "Failed to fetch weather data (status {0}). Please try again later.", status),
		}
	}
}

// isTimeout recognizes both client-level deadline expiry and transport
// timeouts surfaced through net.Error.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
