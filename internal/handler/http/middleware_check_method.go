// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// notFound answers with the failure envelope and 404. It is installed for
// both unknown paths and known paths hit with an unsupported method, so the
// API never reports 405 or chi's plain-text body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteFailure(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
