package service

import (
	"errors"

	"karaku/backend/internal/remote"
	"karaku/backend/internal/repository"
)

// Handlers only import this package, so every error kind a caller can
// match is available here.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = repository.ErrNotFound
	ErrNetwork          = remote.ErrNetwork
	ErrDecode           = remote.ErrDecode
	ErrEmptyTranslation = remote.ErrEmptyTranslation
)
