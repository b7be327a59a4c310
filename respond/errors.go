package respond

import (
	"fmt"
	"net/http"
)

// Kind tags an error with its outcome category. The envelope status code and
// default message are looked up per kind in statusTable.
type Kind int

const (
	// KindInternal is the fallback for uncategorized failures.
	KindInternal Kind = iota
	// KindValidation covers malformed or rejected input.
	KindValidation
	// KindUnauthorized covers missing or failed authentication.
	KindUnauthorized
	// KindPermission covers denied authorization.
	KindPermission
	// KindNotFound covers missing resources.
	KindNotFound
	// KindConflict covers duplicates and multiple-match conditions.
	KindConflict
	// KindIntegrity covers storage constraint violations other than duplicates.
	KindIntegrity
	// KindTimeout covers deadline expiry.
	KindTimeout
	// KindUnavailable covers connectivity failures to backing services.
	KindUnavailable
	// KindThrottled covers rate-limited requests.
	KindThrottled
	// KindMethodNotAllowed covers HTTP methods with no mapped action.
	KindMethodNotAllowed
)

type statusEntry struct {
	status  int
	message string
}

// statusTable drives kind → {status, default message} resolution. Extending
// the taxonomy means adding a row here, not another type switch arm.
var statusTable = map[Kind]statusEntry{
	KindInternal:         {http.StatusInternalServerError, "Internal Server Error"},
	KindValidation:       {http.StatusBadRequest, "Validation Error"},
	KindUnauthorized:     {http.StatusUnauthorized, "Authentication Failed"},
	KindPermission:       {http.StatusForbidden, "Permission Denied"},
	KindNotFound:         {http.StatusNotFound, "Resource Not Found"},
	KindConflict:         {http.StatusConflict, "Conflict"},
	KindIntegrity:        {http.StatusConflict, "Database Integrity Error"},
	KindTimeout:          {http.StatusGatewayTimeout, "Request Timeout"},
	KindUnavailable:      {http.StatusServiceUnavailable, "Connection Error"},
	KindThrottled:        {http.StatusTooManyRequests, "Request Throttled"},
	KindMethodNotAllowed: {http.StatusMethodNotAllowed, "Method Not Allowed"},
}

// Status returns the HTTP status code mapped to the kind.
func (k Kind) Status() int {
	return statusTable[k].status
}

// DefaultMessage returns the envelope message used when none is supplied.
func (k Kind) DefaultMessage() string {
	return statusTable[k].message
}

// Error is a tagged failure carried from services to the response layer.
type Error struct {
	Kind    Kind
	Message string
	Detail  any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.DefaultMessage()
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a tagged error with an optional message override.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error with a kind.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
