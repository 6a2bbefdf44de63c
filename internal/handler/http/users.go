package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("user registered")
	utils.WriteSuccess(w, http.StatusCreated, "User registered", user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("user logged in")
	utils.WriteSuccess(w, http.StatusOK, "Login success", user)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	user.Token = nil
	utils.WriteSuccess(w, http.StatusOK, "User fetched", user)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.AuthService.UpdateUser(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "User updated", updated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("user logged out")
	utils.WriteSuccess(w, http.StatusOK, "Logout success", nil)
}
