// Package apperror holds the domain error sentinels. Controllers map them to
// 4xx responses; every other error is logged and collapsed to a generic 500.
package apperror

import "errors"

var (
	ErrDuplicateUser         = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrQuizNotFound          = errors.New("quiz not found")
	ErrParticipationNotFound = errors.New("participation not found")
	ErrAlreadyFinished       = errors.New("participation already finished")

	// ErrIdentityProvider wraps rejections from the external identity
	// provider so the endpoint layer can surface them as 400s.
	ErrIdentityProvider = errors.New("identity provider rejected the request")
)
