package exchange

import (
	"errors"
	"fmt"
)

// Kind is the closed set of canonical failure categories shared across
// venue adapters.
type Kind string

const (
	KindExchangeError        Kind = "exchange_error"
	KindAuthenticationError  Kind = "authentication_error"
	KindPermissionDenied     Kind = "permission_denied"
	KindInsufficientFunds    Kind = "insufficient_funds"
	KindInvalidOrder         Kind = "invalid_order"
	KindOrderNotFound        Kind = "order_not_found"
	KindMarketNotFound       Kind = "market_not_found"
	KindExchangeNotAvailable Kind = "exchange_not_available"
	KindDDoSProtection       Kind = "ddos_protection"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("bishino: %s (code %s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("bishino: %s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err carries the given canonical kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// errorKindByCode maps the venue's numeric error codes to canonical
// kinds. Unlisted codes fall back to KindExchangeError.
var errorKindByCode = map[string]Kind{
	"2021": KindInsufficientFunds,    // insufficient balance for withdrawal
	"2027": KindInsufficientFunds,    // insufficient balance for trade
	"2015": KindAuthenticationError,  // wrong one-time code
	"3012": KindAuthenticationError,  // invalid api key
	"3025": KindAuthenticationError,  // signature failed
	"3024": KindPermissionDenied,     // wrong api key permissions
	"2033": KindOrderNotFound,        // order completed or revoked
	"2067": KindInvalidOrder,         // market orders not supported
	"2068": KindInvalidOrder,         // order count below minimum
	"2085": KindInvalidOrder,         // order quantity too small
	"4000": KindExchangeNotAvailable, // network unstable
	"4003": KindDDoSProtection,       // server busy
}

func kindForCode(code string) Kind {
	if kind, ok := errorKindByCode[code]; ok {
		return kind
	}
	return KindExchangeError
}

// venueError builds the typed failure for a rejected response.
func venueError(statusCode int, code, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("request rejected with status %d", statusCode)
	}
	return &Error{Kind: kindForCode(code), Code: code, Message: message}
}
