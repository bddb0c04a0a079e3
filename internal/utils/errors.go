package utils

import "errors"

// Common application errors used across services.
var (
	ErrRecordNotFound     = errors.New("RECORD_NOT_FOUND")
	ErrInvalidTransition  = errors.New("INVALID_TRANSITION")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidDeal        = errors.New("INVALID_DEAL")
	ErrUploadDisabled     = errors.New("UPLOAD_DISABLED")
	ErrUnsupportedImage   = errors.New("UNSUPPORTED_IMAGE")
	ErrUnknownLeadKind    = errors.New("UNKNOWN_LEAD_KIND")
)
