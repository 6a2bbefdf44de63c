package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const contactIDParam = "contactId"

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.CreateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), owner, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "Contact created", contact)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), owner, chi.URLParam(r, contactIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Contact fetched", contact)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.UpdateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	// the id comes from the path only
	req.ID = chi.URLParam(r, contactIDParam)

	contact, err := h.services.ContactService.Update(r.Context(), owner, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Contact updated", contact)
}

func (h *Handler) removeContact(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if err := h.services.ContactService.Remove(r.Context(), owner, chi.URLParam(r, contactIDParam)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Contact deleted", nil)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	page, err := intQuery(query, "page", models.DefaultPage)
	if err != nil {
		writeError(w, r, err)
		return
	}
	size, err := intQuery(query, "size", models.DefaultPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ContactService.Search(r.Context(), owner, models.SearchContactRequest{
		Name:  optionalQuery(query, "name"),
		Email: optionalQuery(query, "email"),
		Phone: optionalQuery(query, "phone"),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "Contacts fetched", result)
}
