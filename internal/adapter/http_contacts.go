package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *httpServerAdapter) CreateContact(ctx context.Context, body models.CreateContactRequest) (models.Contact, error) {
	var result models.TypedResponse[models.Contact]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Contact{}, err
	}

	resp, err := req.SetBody(body).SetResult(&result).Post("/api/contacts")
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) GetContact(ctx context.Context, id string) (models.Contact, error) {
	var result models.TypedResponse[models.Contact]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Contact{}, err
	}

	resp, err := req.
		SetPathParam("contactId", id).
		SetResult(&result).
		Get("/api/contacts/{contactId}")
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) UpdateContact(ctx context.Context, body models.UpdateContactRequest) (models.Contact, error) {
	var result models.TypedResponse[models.Contact]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Contact{}, err
	}

	resp, err := req.
		SetPathParam("contactId", body.ID).
		SetBody(body).
		SetResult(&result).
		Put("/api/contacts/{contactId}")
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) RemoveContact(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("contactId", id).
		Delete("/api/contacts/{contactId}")
	if err != nil {
		return fmt.Errorf("remove contact request: %w", err)
	}

	return mapHTTPError(resp)
}

// SearchContacts sends only the filters that are set; zero page or size
// leaves the server defaults in place.
func (h *httpServerAdapter) SearchContacts(ctx context.Context, search models.SearchContactRequest) (models.Page[models.Contact], error) {
	var result models.TypedResponse[models.Page[models.Contact]]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Page[models.Contact]{}, err
	}

	resp, err := req.
		SetQueryParamsFromValues(searchQuery(search)).
		SetResult(&result).
		Get("/api/contacts")
	if err != nil {
		return models.Page[models.Contact]{}, fmt.Errorf("search contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.Contact]{}, err
	}

	return result.Data, nil
}

func searchQuery(search models.SearchContactRequest) url.Values {
	query := url.Values{}
	if search.Name != nil {
		query.Set("name", *search.Name)
	}
	if search.Email != nil {
		query.Set("email", *search.Email)
	}
	if search.Phone != nil {
		query.Set("phone", *search.Phone)
	}
	if search.Page > 0 {
		query.Set("page", strconv.Itoa(search.Page))
	}
	if search.Size > 0 {
		query.Set("size", strconv.Itoa(search.Size))
	}
	return query
}
