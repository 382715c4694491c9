package errors

import (
	"errors"
)

var (
	ErrInvalidInputs        = errors.New("invalid inputs")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountNotFound      = errors.New("account not found")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrTokenExpired         = errors.New("token expired")
	ErrRefreshTokenMismatch = errors.New("user not found or refresh token mismatch")
	ErrMissingSecret        = errors.New("token signing secret is not configured")
	ErrMissingConfig        = errors.New("missing required config")
)

// Kind is the outcome class of a failed auth flow.
type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindConflict
	KindToken
	KindCredentials
	KindNotFound
	KindMismatch
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindToken:
		return "token"
	case KindCredentials:
		return "credentials"
	case KindNotFound:
		return "not_found"
	case KindMismatch:
		return "mismatch"
	case KindConfiguration:
		return "configuration"
	default:
		return "unclassified"
	}
}

// Classify maps err onto a Kind. Checks run in precedence order and the first
// match wins, so a wrapped chain carrying several sentinels resolves to the
// most specific client-facing class.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnclassified
	case errors.Is(err, ErrInvalidInputs):
		return KindValidation
	case errors.Is(err, ErrEmailAlreadyInUse):
		return KindConflict
	case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
		return KindToken
	case errors.Is(err, ErrInvalidCredentials):
		return KindCredentials
	case errors.Is(err, ErrAccountNotFound):
		return KindNotFound
	case errors.Is(err, ErrRefreshTokenMismatch):
		return KindMismatch
	case errors.Is(err, ErrMissingSecret), errors.Is(err, ErrMissingConfig):
		return KindConfiguration
	default:
		return KindUnclassified
	}
}
