// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the contact-keeper REST API.
//
// [ServerAdapter] hides the transport from cmd/client. Non-2xx responses are
// mapped to the sentinels in errors.go, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ServerAdapter talks to the contact-keeper server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the session token sent with authenticated requests.
	SetToken(token string)
	// Token returns the stored session token or "".
	Token() string

	Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error)
	// Login stores the issued token via SetToken on success.
	Login(ctx context.Context, req models.LoginUserRequest) (models.User, error)
	CurrentUser(ctx context.Context) (models.User, error)
	UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error)
	// Logout revokes the session on the server and forgets the token.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, req models.CreateContactRequest) (models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	UpdateContact(ctx context.Context, req models.UpdateContactRequest) (models.Contact, error)
	RemoveContact(ctx context.Context, id string) error
	SearchContacts(ctx context.Context, req models.SearchContactRequest) (models.Page[models.Contact], error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
