package adapter

import "errors"

// Sentinels for non-2xx responses. The wrapped message carries the
// server's explanation.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrNotLoggedIn = errors.New("no session token, log in first")
)
