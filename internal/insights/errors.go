package insights

import (
	"fmt"
)

// UnsupportedTenantError indicates that a caller supplied a tenant id that is
// neither the default tenant nor listed in the additional tenant mapping.
// It is fatal for the call and must not be retried.
type UnsupportedTenantError struct {
	TenantID string
}

func (e *UnsupportedTenantError) Error() string {
	return fmt.Sprintf("unsupported tenant id: %s", e.TenantID)
}

// TokenFetchError indicates that the upstream token endpoint was unreachable
// or rejected the credentials. The caller may retry on its next invocation.
type TokenFetchError struct {
	TenantID string
	Cause    error
}

func (e *TokenFetchError) Error() string {
	return fmt.Sprintf("fetch token for tenant %s: %v", e.TenantID, e.Cause)
}

func (e *TokenFetchError) Unwrap() error {
	return e.Cause
}

// HTTPError indicates a non-2xx response from an upstream data endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed: [%d]%s", e.StatusCode, e.Body)
}

// UnsupportedComponentError indicates a component type outside the closed
// enumeration accepted by the components endpoint.
type UnsupportedComponentError struct {
	Component string
}

func (e *UnsupportedComponentError) Error() string {
	return fmt.Sprintf("unsupported component type: %s", e.Component)
}
