package service

import "errors"

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidCredentials    = errors.New("username or password is wrong")
	ErrUsernameAlreadyExists = errors.New("username already exists")

	ErrContactNotFound = errors.New("contact is not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
