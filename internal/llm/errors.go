package llm

import (
	"fmt"

	"techtospeak/internal/domain"
)

// UpstreamError indicates the model service call itself failed
// (network, auth, quota, malformed request or an empty reply).
type UpstreamError struct {
	Err      error
	Provider string
	Op       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is lets callers match any upstream failure with domain.ErrUpstreamInvocation.
func (e *UpstreamError) Is(target error) bool {
	return target == domain.ErrUpstreamInvocation
}

// NewUpstreamError wraps err as an UpstreamError for the given provider operation.
func NewUpstreamError(provider, op string, err error) *UpstreamError {
	return &UpstreamError{Err: err, Provider: provider, Op: op}
}
