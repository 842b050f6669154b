package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork covers transport failures and non-2xx responses.
	ErrNetwork = errors.New("network failure")
	// ErrDecode covers malformed or unusable response bodies.
	ErrDecode = errors.New("decode failure")
	// ErrEmptyTranslation means the service answered without any translation.
	ErrEmptyTranslation = fmt.Errorf("%w: empty translation", ErrDecode)
)

// StatusError is a non-2xx answer from a remote service.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNetwork
}

func networkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}

func decodeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDecode, err)
}
