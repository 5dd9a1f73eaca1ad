package http

import (
	"time"
)

// BackoffConfig controls retry behavior for a request. A retry is
// attempted on transport-level failures and on the listed status codes.
type BackoffConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// Interval is the delay before the first retry.
	Interval time.Duration
	// Multiplier scales the delay after each retry. Values below 1 are
	// treated as 1 (constant interval).
	Multiplier float64
	// RetryableStatus lists HTTP status codes that trigger a retry.
	// Empty means retry on any status >= 500.
	RetryableStatus []int
}

// NewBackoffConfig creates a backoff configuration with sane defaults:
// 3 retries, 500ms initial interval, doubling each attempt.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries: 3,
		Interval:   500 * time.Millisecond,
		Multiplier: 2,
	}
}

// WithMaxRetries sets the number of retries after the initial attempt.
func (b *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	b.MaxRetries = maxRetries
	return b
}

// WithInterval sets the delay before the first retry.
func (b *BackoffConfig) WithInterval(interval time.Duration) *BackoffConfig {
	b.Interval = interval
	return b
}

// WithMultiplier sets the delay growth factor between retries.
func (b *BackoffConfig) WithMultiplier(multiplier float64) *BackoffConfig {
	b.Multiplier = multiplier
	return b
}

// WithRetryableStatus sets the HTTP status codes that trigger a retry.
func (b *BackoffConfig) WithRetryableStatus(statuses ...int) *BackoffConfig {
	b.RetryableStatus = statuses
	return b
}

// shouldRetry reports whether the given outcome warrants another attempt.
func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	if err != nil && status == 0 {
		// No response at all.
		return true
	}
	if len(b.RetryableStatus) == 0 {
		return status >= 500
	}
	for _, s := range b.RetryableStatus {
		if status == s {
			return true
		}
	}
	return false
}

// doRequestWithBackoff sends the request, retrying per the backoff
// configuration. A nil config sends exactly once.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	success, failure, status, err := hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
	if backoff == nil || err == nil {
		return success, failure, status, err
	}

	interval := backoff.Interval
	multiplier := backoff.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	for attempt := 1; attempt <= backoff.MaxRetries; attempt++ {
		if !backoff.shouldRetry(status, err) {
			break
		}

		time.Sleep(interval)
		interval = time.Duration(float64(interval) * multiplier)

		success, failure, status, err = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil {
			break
		}
	}

	return success, failure, status, err
}
