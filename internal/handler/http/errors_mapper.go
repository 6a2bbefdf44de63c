package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

const (
	msgValidationError = "Validation error"
	msgUnauthorized    = "Unauthorized"
	msgInternalError   = "Internal server error"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:          http.StatusUnauthorized,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrUsernameAlreadyExists: http.StatusConflict,
	service.ErrContactNotFound:       http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	service.ErrUnauthorized:          msgUnauthorized,
	service.ErrInvalidCredentials:    "Username or password is wrong",
	service.ErrUsernameAlreadyExists: "Username already exists",
	service.ErrContactNotFound:       "Contact is not found",
}

func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, errorMessageMap[target]
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError renders err as a failure envelope. Validation errors list every
// violated constraint; unknown errors are logged and reported as 500 without
// detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		log.Debug().Strs("errors", vErr.Messages).Msg("request rejected by validation")
		utils.WriteFailure(w, http.StatusBadRequest, msgValidationError, vErr.Messages...)
		return
	}

	status, message := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")
	} else {
		log.Debug().Err(err).Int("status", status).Send()
	}

	utils.WriteFailure(w, status, message)
}
