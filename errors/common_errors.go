// errors/common_errors.go
package errors

import "errors"

var (
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrCatalogRequest    = errors.New("catalog request failed")
	ErrCatalogResponse   = errors.New("unexpected catalog response")
	ErrSessionNotFound   = errors.New("session not found")
	ErrProviderClosed    = errors.New("permission provider closed")
	ErrDraftNotFound     = errors.New("selector draft not found")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)
