package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for domain operations
var (
	ErrIncidentNotFound = goerr.New("incident not found")
	ErrInvalidRequest   = goerr.New("invalid request")
	ErrUnexpectedResult = goerr.New("operation did not reach a terminal state")
)

// Error tags describing how the directory service rejected a call. Adapters
// attach exactly one of them to every failure they can classify so the core
// logic never inspects error text.
var (
	ErrTagAlreadyExists    = goerr.NewTag("already_exists")
	ErrTagAccessDenied     = goerr.NewTag("access_denied")
	ErrTagBlockedRecipient = goerr.NewTag("blocked_recipient")
	ErrTagNotFound         = goerr.NewTag("not_found")
)

// ErrTagInvalidInput marks errors caused by the caller's request
var ErrTagInvalidInput = goerr.NewTag("invalid_input")

// StatusKey is the goerr value key carrying the remote status code
const StatusKey = "status"

// StatusCode returns the remote status code attached to err, or 0 when the
// failure did not come from a remote call.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := goerr.Values(err)[StatusKey].(int); ok {
		return code
	}
	return 0
}

// IsAlreadyExists reports whether err is a conflict with an existing resource
func IsAlreadyExists(err error) bool {
	return err != nil && goerr.HasTag(err, ErrTagAlreadyExists)
}

// IsAccessDenied reports whether the caller lacks permission for the operation
func IsAccessDenied(err error) bool {
	return err != nil && goerr.HasTag(err, ErrTagAccessDenied)
}

// IsBlockedRecipient reports whether a recipient was rejected by the tenant
func IsBlockedRecipient(err error) bool {
	return err != nil && goerr.HasTag(err, ErrTagBlockedRecipient)
}

// IsNotFound reports whether the target resource does not exist
func IsNotFound(err error) bool {
	return err != nil && goerr.HasTag(err, ErrTagNotFound)
}

// IsInvalidInput reports whether err was caused by the caller's request
func IsInvalidInput(err error) bool {
	return err != nil && goerr.HasTag(err, ErrTagInvalidInput)
}
