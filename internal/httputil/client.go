// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every remote call when no timeout is configured.
// Remote calls are synchronous with no retries; a failed call fails the
// enclosing step immediately.
const DefaultTimeout = 30 * time.Second

// NewClient returns an HTTP client with the given timeout, falling back to
// DefaultTimeout when the value is zero or negative.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
