package github

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
)

// ErrorType represents different categories of GitHub API errors
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// APIError represents a structured error from GitHub operations
type APIError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Cause     error     `json:"-"`
	Resource  string    `json:"resource,omitempty"`
	Retryable bool      `json:"retryable"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// IsRetryable returns whether the error is retryable
func (e *APIError) IsRetryable() bool {
	return e.Retryable
}

// IsNotFound reports whether the error is a GitHub "resource missing" error.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Type == ErrorTypeNotFound
}

// WrapAPIError wraps a GitHub API error into our structured error type.
// resource names the thing being operated on, e.g. "team platform in
// example-org", and steers the guidance in the message.
func WrapAPIError(err error, resource string) *APIError {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Resource == "" {
			apiErr.Resource = resource
		}
		return apiErr
	}

	if ghErr, ok := err.(*github.ErrorResponse); ok {
		return parseErrorResponse(ghErr, resource)
	}

	if rateErr, ok := err.(*github.RateLimitError); ok {
		return &APIError{
			Type:      ErrorTypeRateLimit,
			Message:   fmt.Sprintf("rate limit exceeded, resets at %v", rateErr.Rate.Reset.Time),
			Cause:     err,
			Resource:  resource,
			Retryable: true,
		}
	}

	if isNetworkError(err) {
		return &APIError{
			Type:      ErrorTypeNetwork,
			Message:   "network error, check your connection and try again",
			Cause:     err,
			Resource:  resource,
			Retryable: true,
		}
	}

	return &APIError{
		Type:     ErrorTypeUnknown,
		Message:  err.Error(),
		Cause:    err,
		Resource: resource,
	}
}

func parseErrorResponse(ghErr *github.ErrorResponse, resource string) *APIError {
	apiErr := &APIError{
		Resource: resource,
		Cause:    ghErr,
	}

	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		apiErr.Type = ErrorTypeAuth
		apiErr.Message = "authentication failed, check your GitHub token"

	case http.StatusForbidden:
		if strings.Contains(ghErr.Message, "rate limit") {
			apiErr.Type = ErrorTypeRateLimit
			apiErr.Message = "GitHub API rate limit exceeded, wait before retrying"
			apiErr.Retryable = true
		} else {
			apiErr.Type = ErrorTypePermission
			apiErr.Message = "insufficient permissions: the token needs repo and admin:org scopes"
		}

	case http.StatusNotFound:
		apiErr.Type = ErrorTypeNotFound
		switch {
		case strings.Contains(resource, "team"):
			apiErr.Message = "team not found, verify the team name and organization"
		case strings.Contains(resource, "user"):
			apiErr.Message = "user not found, verify the username"
		case strings.Contains(resource, "repo"):
			apiErr.Message = "repository not found, check the name and your access"
		default:
			apiErr.Message = "resource not found"
		}

	case http.StatusConflict:
		apiErr.Type = ErrorTypeConflict
		apiErr.Message = "resource conflict"
		if strings.Contains(ghErr.Message, "already exists") {
			apiErr.Message = "a resource with that name already exists"
		}

	case http.StatusUnprocessableEntity:
		apiErr.Type = ErrorTypeValidation
		apiErr.Message = "validation failed"
		if len(ghErr.Errors) > 0 {
			var details []string
			for _, e := range ghErr.Errors {
				if e.Field != "" {
					details = append(details, fmt.Sprintf("%s: %s", e.Field, e.Message))
				} else {
					details = append(details, e.Message)
				}
			}
			apiErr.Message = fmt.Sprintf("validation failed: %s", strings.Join(details, "; "))
		}

	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		apiErr.Type = ErrorTypeNetwork
		apiErr.Message = "GitHub API is temporarily unavailable, try again later"
		apiErr.Retryable = true

	default:
		apiErr.Type = ErrorTypeUnknown
		apiErr.Message = ghErr.Message
		apiErr.Retryable = ghErr.Response.StatusCode >= 500
	}

	return apiErr
}

func isNetworkError(err error) bool {
	errStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no such host",
		"timeout",
		"dial tcp",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// RetryConfig defines configuration for retry logic
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns a default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2.0,
	}
}

// WithRetry executes an operation, retrying transient failures with
// exponential backoff. Non-retryable errors return immediately.
func WithRetry(operation func() error, config *RetryConfig) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)

			delay = time.Duration(float64(delay) * config.BackoffFactor)
			if delay > config.MaxDelay {
				delay = config.MaxDelay
			}
		}

		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		apiErr, ok := err.(*APIError)
		if !ok || !apiErr.IsRetryable() {
			return err
		}

		// A rate-limited call knows exactly when it may run again.
		if apiErr.Type == ErrorTypeRateLimit {
			if rateErr, ok := apiErr.Cause.(*github.RateLimitError); ok {
				wait := time.Until(rateErr.Rate.Reset.Time)
				if wait > 0 && wait < 5*time.Minute {
					time.Sleep(wait)
					continue
				}
			}
		}
	}

	return fmt.Errorf("operation failed after %d retries: %w", config.MaxRetries, lastErr)
}
