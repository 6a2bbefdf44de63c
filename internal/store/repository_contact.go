package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactRepository is the SQL implementation of [ContactRepository] over
// the "contacts" table. Every statement carries the owner username in its
// WHERE clause.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository].
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateContactQuery(c.builder, contact)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.CreateContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "contactRepository.CreateContact").
			Str("username", contact.Username).
			Str("contact_id", contact.ID).
			Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return contact, nil
}

func (c *contactRepository) FindContact(ctx context.Context, username, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindContactQuery(c.builder, username, id)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.FindContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.FindContact").
			Str("username", username).
			Str("contact_id", id).
			Msg("failed to select contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// UpdateContact writes the non-nil fields of update and returns the stored
// row. A row deleted or owned by someone else yields [ErrContactNotFound].
func (c *contactRepository) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	if update.IsEmpty() {
		return c.FindContact(ctx, update.Username, update.ID)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(c.builder, update)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.UpdateContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.UpdateContact").
			Str("username", update.Username).
			Str("contact_id", update.ID).
			Msg("failed to update contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return contact, nil
}

func (c *contactRepository) DeleteContact(ctx context.Context, username, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(c.builder, username, id)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.DeleteContact").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.DeleteContact").
			Str("username", username).
			Str("contact_id", id).
			Msg("failed to delete contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts returns one window of the owner's contacts matching filter,
// ordered by creation time.
func (c *contactRepository) SearchContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchContactsQuery(c.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.SearchContacts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.SearchContacts").
			Str("username", filter.Username).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, filter.Limit)
	for rows.Next() {
		var contact models.Contact
		if err = rows.Scan(contactDest(&contact)...); err != nil {
			log.Err(err).Str("func", "contactRepository.SearchContacts").Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "contactRepository.SearchContacts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// CountContacts returns how many of the owner's contacts match filter,
// ignoring its window.
func (c *contactRepository) CountContacts(ctx context.Context, filter models.ContactFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountContactsQuery(c.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.CountContacts").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = c.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "contactRepository.CountContacts").
			Str("username", filter.Username).
			Msg("failed to count contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func contactDest(contact *models.Contact) []any {
	return []any{
		&contact.ID,
		&contact.Username,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Phone,
		&contact.CreatedAt,
	}
}

func scanContact(row *sql.Row) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(contactDest(&contact)...)
	return contact, err
}
