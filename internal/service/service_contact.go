package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	ids               IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

// NewContactService constructs a ContactService assigning UUIDv7 ids.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return newContactService(contactRepository, utils.NewUUIDGenerator(), logger)
}

func newContactService(contactRepository store.ContactRepository, ids IDGenerator, logger *logger.Logger) *contactService {
	return &contactService{
		contactRepository: contactRepository,
		ids:               ids,
		now:               time.Now,
		logger:            logger,
	}
}

func (c *contactService) Create(ctx context.Context, owner models.User, req models.CreateContactRequest) (models.Contact, error) {
	contact := models.Contact{
		ID:        c.ids.Generate(),
		Username:  owner.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		// both drivers keep microseconds at most
		CreatedAt: c.now().UTC().Truncate(time.Microsecond),
	}

	created, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", owner.Username).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created, nil
}

func (c *contactService) Get(ctx context.Context, owner models.User, id string) (models.Contact, error) {
	contact, err := c.contactRepository.FindContact(ctx, owner.Username, id)
	if err != nil {
		return models.Contact{}, c.notFoundOr(ctx, err, owner, id, "contact search ended with error")
	}

	return contact, nil
}

// Update overwrites the fields present in req. A request without fields
// returns the stored contact unchanged.
func (c *contactService) Update(ctx context.Context, owner models.User, req models.UpdateContactRequest) (models.Contact, error) {
	if _, err := c.contactRepository.FindContact(ctx, owner.Username, req.ID); err != nil {
		return models.Contact{}, c.notFoundOr(ctx, err, owner, req.ID, "contact search ended with error")
	}

	updated, err := c.contactRepository.UpdateContact(ctx, models.ContactUpdate{
		ID:        req.ID,
		Username:  owner.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return models.Contact{}, c.notFoundOr(ctx, err, owner, req.ID, "contact update ended with error")
	}

	return updated, nil
}

func (c *contactService) Remove(ctx context.Context, owner models.User, id string) error {
	if _, err := c.contactRepository.FindContact(ctx, owner.Username, id); err != nil {
		return c.notFoundOr(ctx, err, owner, id, "contact search ended with error")
	}

	if err := c.contactRepository.DeleteContact(ctx, owner.Username, id); err != nil {
		return c.notFoundOr(ctx, err, owner, id, "contact removal ended with error")
	}

	return nil
}

// Search returns one page of the owner's contacts matching every given
// criterion, ordered by creation time. Page and size below 1 fall back to
// models.DefaultPage and models.DefaultPageSize.
func (c *contactService) Search(ctx context.Context, owner models.User, req models.SearchContactRequest) (models.Page[models.Contact], error) {
	log := logger.FromContext(ctx)

	page, size := req.Page, req.Size
	if page < 1 {
		page = models.DefaultPage
	}
	if size < 1 {
		size = models.DefaultPageSize
	}

	filter := models.ContactFilter{
		Username: owner.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Limit:    uint64(size),
	}

	// A window starting past the largest SQL offset is empty by definition.
	var contacts []models.Contact
	if int64(page-1) <= math.MaxInt64/int64(size) {
		filter.Offset = uint64(page-1) * uint64(size)

		var err error
		contacts, err = c.contactRepository.SearchContacts(ctx, filter)
		if err != nil {
			log.Err(err).Str("username", owner.Username).Msg("contact search ended with error")
			return models.Page[models.Contact]{}, fmt.Errorf("contact search ended with error: %w", err)
		}
	}

	total, err := c.contactRepository.CountContacts(ctx, filter)
	if err != nil {
		log.Err(err).Str("username", owner.Username).Msg("contact count ended with error")
		return models.Page[models.Contact]{}, fmt.Errorf("contact count ended with error: %w", err)
	}

	return models.NewPage(contacts, page, size, total), nil
}

func (c *contactService) notFoundOr(ctx context.Context, err error, owner models.User, id, msg string) error {
	if errors.Is(err, store.ErrContactNotFound) {
		return ErrContactNotFound
	}

	logger.FromContext(ctx).Err(err).
		Str("username", owner.Username).
		Str("contact_id", id).
		Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
