package types

import "errors"

// Every terminal failure returned by the application wraps one of these.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUnreachable       = errors.New("host unreachable")
	ErrConfiguration     = errors.New("interface configuration failed")
	ErrPermission        = errors.New("insufficient privileges")
	ErrTransport         = errors.New("TFTP transfer failed")
	ErrConsentDeclined   = errors.New("fallback sweep declined by operator")
	ErrFallbackExhausted = errors.New("no fallback address reached the router")
)
