package checklist

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
)

// Header is the name and details pair shared by List and Blueprint. Fields
// are exported for hydration from storage; edits should go through the
// owning container's Rename and SetDetails so they are validated.
type Header struct {
	Name    string
	Details string
}

// NewHeader validates a name and details pair for a new container. others
// holds the names of every existing container of the same kind.
func NewHeader(scope domain.NameScope, name, details string, others []naming.Entry) (Header, error) {
	n, err := naming.Validate("name", name)
	if err != nil {
		return Header{}, err
	}
	d, err := naming.ValidateDetails("details", details)
	if err != nil {
		return Header{}, err
	}
	if !naming.IsUnique(n, others, uuid.Nil) {
		return Header{}, &domain.NameUnavailableError{Scope: scope, Name: n}
	}
	return Header{Name: n, Details: d}, nil
}

func (h *Header) rename(scope domain.NameScope, self uuid.UUID, name string, others []naming.Entry) error {
	n, err := naming.Validate("name", name)
	if err != nil {
		return err
	}
	if n == h.Name {
		return nil
	}
	if !naming.IsUnique(n, others, self) {
		return &domain.NameUnavailableError{Scope: scope, Name: n}
	}
	h.Name = n
	return nil
}

func (h *Header) setDetails(details string) error {
	d, err := naming.ValidateDetails("details", details)
	if err != nil {
		return err
	}
	h.Details = d
	return nil
}
