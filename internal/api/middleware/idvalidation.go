// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmerino/portfolio-dashboard/internal/api/response"
	"github.com/dmerino/portfolio-dashboard/internal/validation"
)

// ValidateIDMiddleware validates that the id URL parameter is present and a
// positive integer. Returns 400 Bad Request otherwise. Apply it to routes
// that carry a position ID in the URL path:
//
//	r.Route("/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateIDMiddleware)
//	    r.Put("/", handler.UpdateFund)
//	    r.Delete("/", handler.DeleteFund)
//	})
func ValidateIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid ID is required", "")
			return
		}

		if _, err := validation.ValidateID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
