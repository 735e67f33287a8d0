package webclient

import (
	"net/http"
	"time"
)

// NewDefault returns an HTTP client with an explicit timeout. Both outbound
// calls in this service must be bounded; callers pass their own limit.
func NewDefault(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
