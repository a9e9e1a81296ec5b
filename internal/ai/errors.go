package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// FailureClass buckets completion-service errors. The dialogue engine keys
// retry behavior and scripted fallback replies on these four classes only;
// provider-specific failure codes never leak past this package.
type FailureClass string

const (
	FailureOverloaded    FailureClass = "overloaded"
	FailureQuotaExceeded FailureClass = "quota-exceeded"
	FailureAuthFailed    FailureClass = "auth-failed"
	FailureOther         FailureClass = "other"
)

// Classify maps a completion error to its failure class.
func Classify(err error) FailureClass {
	if err == nil {
		return FailureOther
	}
	// Upstream timeouts are "other": not worth a same-round-trip retry.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureOther
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return FailureQuotaExceeded
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return FailureAuthFailed
		case apiErr.Code >= 500:
			return FailureOverloaded
		}
		return FailureOther
	}

	// The genai SDK sometimes surfaces gRPC-flavored errors as plain strings.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "quota"):
		return FailureQuotaExceeded
	case strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "permission denied") || strings.Contains(msg, "api key"):
		return FailureAuthFailed
	case strings.Contains(msg, "unavailable") || strings.Contains(msg, "overloaded") || strings.Contains(msg, "503") || strings.Contains(msg, "internal"):
		return FailureOverloaded
	}
	return FailureOther
}

// Retryable reports whether a failure class is transient enough to retry
// within the same round-trip. Quota and auth failures fail fast.
func (c FailureClass) Retryable() bool {
	return c == FailureOverloaded
}
