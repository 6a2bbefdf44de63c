package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// authService is the concrete implementation of AuthService.
// Sessions are opaque random tokens persisted next to the account, so a
// token is valid exactly as long as the users row still holds it.
type authService struct {
	userRepository store.UserRepository

	// hasher turns plain passwords into bcrypt hashes and verifies them.
	hasher PasswordHasher

	// tokens issues new session tokens on login.
	tokens IDGenerator

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService hashing passwords with bcrypt at
// cfg.PasswordHashCost. Input is expected to be validated already; see
// NewAuthValidationService.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, utils.NewBcryptHasher(cfg.PasswordHashCost), utils.NewTokenGenerator(), logger)
}

func newAuthService(userRepository store.UserRepository, hasher PasswordHasher, tokens IDGenerator, logger *logger.Logger) *authService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates an account with a hashed password and no session.
//
// Returns ErrUsernameAlreadyExists when the username is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:  req.Username,
		Name:      req.Name,
		Password:  hash,
		CreatedAt: a.now().UTC(),
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("username", req.Username).Msg("username already registered")
		return models.User{}, ErrUsernameAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login checks the password and stores a fresh token for the user.
//
// An unknown username and a wrong password both yield
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", req.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.Password, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Str("username", req.Username).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	token := a.tokens.Generate()
	if err = a.userRepository.SetToken(ctx, foundUser.Username, &token); err != nil {
		log.Err(err).Str("username", req.Username).Msg("storing session token failed")
		return models.User{}, fmt.Errorf("storing session token failed: %w", err)
	}

	foundUser.Token = &token
	return foundUser, nil
}

// Logout clears the user's token. Calling it again is harmless.
func (a *authService) Logout(ctx context.Context, user models.User) error {
	err := a.userRepository.SetToken(ctx, user.Username, nil)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUnauthorized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("clearing session token failed")
		return fmt.Errorf("clearing session token failed: %w", err)
	}

	return nil
}

// UpdateUser changes the name and/or password of user. Absent fields keep
// their stored values and the session stays valid.
func (a *authService) UpdateUser(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{
		Username: user.Username,
		Name:     req.Name,
	}

	if req.Password != nil {
		hash, err := a.hasher.Hash(*req.Password)
		if err != nil {
			log.Err(err).Str("username", user.Username).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &hash
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, update)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	updatedUser.Token = nil
	return updatedUser, nil
}

// Authenticate returns the user holding token. Empty and unknown tokens
// both yield ErrUnauthorized.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}
