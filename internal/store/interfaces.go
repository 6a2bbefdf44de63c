package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their session token.
type UserRepository interface {
	// CreateUser inserts a new account. Returns ErrUsernameAlreadyExists
	// when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns ErrNoUserWasFound when absent.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByToken returns ErrNoUserWasFound when no account holds token.
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	// UpdateUser writes the non-nil fields of update and returns the stored
	// account.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	// SetToken replaces the session token; nil clears it.
	SetToken(ctx context.Context, username string, token *string) error
}

// ContactRepository persists contacts. Every method is scoped to the owner
// username, so a contact of another user is indistinguishable from a missing
// one.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContact(ctx context.Context, username, id string) (models.Contact, error)
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, username, id string) error
	SearchContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	CountContacts(ctx context.Context, filter models.ContactFilter) (int64, error)
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
