package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRequestCanceled indicates the caller went away before any provider succeeded
	ErrRequestCanceled = errors.New("request canceled")

	// ErrDuplicateProvider indicates two registry entries share an id
	ErrDuplicateProvider = errors.New("duplicate provider id")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Reason   FailureReason
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (%s): %v", e.Provider, e.Reason, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
