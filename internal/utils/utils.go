package utils

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// IsTransient reports whether a provider error looks like a temporary condition
// (rate limit, upstream 5xx, timeout, dropped connection). Generation is never
// retried; this only decides how a failure is reported to operators.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 500 || reqErr.HTTPStatusCode == 429
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"rate limit",
		"502 bad gateway",
		"503 service unavailable",
		"504 gateway timeout",
		"timeout",
		"connection reset by peer",
		"connection refused",
	} {
		if strings.Contains(errMsg, marker) {
			return true
		}
	}
	return false
}

// Describe renders a short classification for log lines.
func Describe(err error) string {
	if IsTransient(err) {
		return "transient"
	}
	return "permanent"
}
