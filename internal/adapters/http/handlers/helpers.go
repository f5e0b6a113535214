package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
)

// Query parameters understood by the collection and detail endpoints.
const (
	queryItemSort  = "sort"
	queryOrder     = "order"
	queryNameMatch = "q"
)

// Defaults holds the orderings applied when a request does not name one.
type Defaults struct {
	ItemSort      checklist.Strategy
	ListSort      string
	BlueprintSort string
}

// parseID extracts a UUID path parameter from the chi URL params.
func parseID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid UUID"},
		}
	}
	return id, nil
}

// parseIDs extracts the container and item ids of a nested item route.
func parseIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	id, err := parseID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	itemID, err := parseID(r, "itemId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return id, itemID, nil
}

// parseItemSort reads the item ordering from the query string.
func parseItemSort(r *http.Request, def checklist.Strategy) (checklist.Strategy, error) {
	return checklist.ParseStrategy(r.URL.Query().Get(queryItemSort), def)
}

// parseOrder reads a collection ordering and checks it against allowed.
func parseOrder(r *http.Request, def string, allowed ...string) (string, error) {
	raw := r.URL.Query().Get(queryOrder)
	if raw == "" {
		return def, nil
	}
	for _, a := range allowed {
		if raw == a {
			return raw, nil
		}
	}
	return "", &domain.ValidationError{
		Fields: map[string]string{queryOrder: fmt.Sprintf("invalid: %q", raw)},
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
