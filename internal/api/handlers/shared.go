package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseJSON decodes a request body into the given request type, rejecting
// unknown fields so client typos surface as 400s instead of silent zeroes.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}

	return req, nil
}

// urlID returns the {id} URL parameter as an int64. The ID validation
// middleware guarantees it parses; this helper just converts.
func urlID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}
