package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

const msgMustNotEmpty = "must not be empty"

// CreateContainerRequest represents the JSON body for creating a list or a
// blueprint.
type CreateContainerRequest struct {
	Name    string `json:"name"`
	Details string `json:"details,omitempty"`
}

// Validate checks that required fields are present and within limits.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateContainerRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	} else {
		checkLength(fields, "name", r.Name, naming.MaxNameLength)
	}
	checkLength(fields, "details", r.Details, naming.MaxDetailsLength)

	return fieldsError(fields)
}

// UpdateContainerRequest represents the JSON body for a partial header
// update. Nil means "do not change this field.".
type UpdateContainerRequest struct {
	Name    *string `json:"name,omitempty"`
	Details *string `json:"details,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateContainerRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			fields["name"] = msgMustNotEmpty
		} else {
			checkLength(fields, "name", *r.Name, naming.MaxNameLength)
		}
	}
	if r.Details != nil {
		checkLength(fields, "details", *r.Details, naming.MaxDetailsLength)
	}

	return fieldsError(fields)
}

// ToPatch converts the request to a service patch.
func (r *UpdateContainerRequest) ToPatch() ports.HeaderPatch {
	return ports.HeaderPatch{Name: r.Name, Details: r.Details}
}

// CreateItemRequest represents the JSON body for adding an item.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Priority bool   `json:"priority,omitempty"`
}

// Validate checks that the item name is present and within limits.
func (r *CreateItemRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	} else {
		checkLength(fields, "name", r.Name, naming.MaxNameLength)
	}

	return fieldsError(fields)
}

// UpdateItemRequest represents the JSON body for a partial item update.
// Done is ignored for blueprint items.
type UpdateItemRequest struct {
	Name     *string `json:"name,omitempty"`
	Done     *bool   `json:"done,omitempty"`
	Priority *bool   `json:"priority,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateItemRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			fields["name"] = msgMustNotEmpty
		} else {
			checkLength(fields, "name", *r.Name, naming.MaxNameLength)
		}
	}

	return fieldsError(fields)
}

// ToPatch converts the request to a service patch.
func (r *UpdateItemRequest) ToPatch() ports.ItemPatch {
	return ports.ItemPatch{Name: r.Name, Done: r.Done, Priority: r.Priority}
}

// checkLength records a too-long error for value measured after trimming,
// in characters.
func checkLength(fields map[string]string, field, value string, limit int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > limit {
		fields[field] = fmt.Sprintf(domain.MsgTooLong, limit)
	}
}

func fieldsError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
