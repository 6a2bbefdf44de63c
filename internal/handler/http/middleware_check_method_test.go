// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestNotFound_Routing(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("items"))
	})
	router.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		envelope   bool
	}{
		{name: "registered route", method: http.MethodGet, path: "/api/items", wantStatus: http.StatusOK},
		{name: "registered param route", method: http.MethodDelete, path: "/api/items/7", wantStatus: http.StatusNoContent},
		{name: "wrong method", method: http.MethodPut, path: "/api/items", wantStatus: http.StatusNotFound, envelope: true},
		{name: "wrong method on param route", method: http.MethodPatch, path: "/api/items/7", wantStatus: http.StatusNotFound, envelope: true},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound, envelope: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.envelope {
				assert.JSONEq(t, `{"success":false,"message":"Not Found"}`, rr.Body.String())
			}
		})
	}
}
