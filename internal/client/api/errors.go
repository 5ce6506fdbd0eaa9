package api

import "errors"

var (
	// ErrConfig is returned for calls that could not be built: unknown
	// endpoint key without a path override, or an unencodable body.
	ErrConfig = errors.New("config error")
	// ErrAuth is returned when the backend rejects a sign-in.
	ErrAuth = errors.New("authentication failed")
	// ErrSessionExpired is returned when the backend answers 401 mid-session.
	ErrSessionExpired = errors.New("session expired")
	// ErrServer is returned for non-2xx responses and malformed bodies.
	ErrServer = errors.New("server error")
	// ErrNetwork is returned when no response was received at all.
	ErrNetwork = errors.New("network error")
)

const (
	sessionExpiredMessage = "Session Expired"
	requestFailedMessage  = "Request failed"
)

// Error is the failure half of a Result.
type Error struct {
	// Kind is one of the package sentinels.
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// outcome is the metrics label for a failure kind.
func outcome(e *Error) string {
	if e == nil {
		return "success"
	}
	switch e.Kind {
	case ErrConfig:
		return "config"
	case ErrAuth:
		return "auth"
	case ErrSessionExpired:
		return "session_expired"
	case ErrNetwork:
		return "network"
	default:
		return "server"
	}
}
