package mpesa

import "errors"

const (
	ErrCodeTimeout           = "TIMEOUT"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeAuthFailed        = "AUTH_FAILED"
	ErrCodeRequestRejected   = "REQUEST_REJECTED"
	ErrCodeMalformedCallback = "MALFORMED_CALLBACK"
)

var (
	ErrTimeout           = errors.New(ErrCodeTimeout)
	ErrNetwork           = errors.New(ErrCodeNetworkError)
	ErrAuthFailed        = errors.New(ErrCodeAuthFailed)
	ErrRequestRejected   = errors.New(ErrCodeRequestRejected)
	ErrMalformedCallback = errors.New(ErrCodeMalformedCallback)
)
