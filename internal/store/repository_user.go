package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the stored row.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.classify(err) == UniqueViolation {
			log.Debug().Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("username is taken")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername returns the account with the given username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByUsername", sq.Eq{"username": username})
}

// FindUserByToken returns the account currently holding token.
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByToken", sq.Eq{"token": token})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to select user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser writes the non-nil fields of update. An empty update returns
// the current row unchanged.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if update.IsEmpty() {
		return r.FindUserByUsername(ctx, update.Username)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, update)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Str("username", update.Username).Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// SetToken overwrites the session token of username. Passing nil clears it.
func (r *userRepository) SetToken(ctx context.Context, username string, token *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetTokenQuery(r.builder, username, token)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SetToken").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SetToken").Str("username", username).Msg("failed to set token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.Username, &user.Name, &user.Password, &user.Token, &user.CreatedAt)
	return user, err
}
