// Package catalog holds the static offering of the salon: professions,
// services and masters. The booking engine only reads these; they are
// maintained by administrator actions.
package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("name is empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrMasterInactive   = errors.New("master is inactive")
	ErrServiceNotListed = errors.New("service is not assigned to the master")
)

type Profession struct {
	id   uuid.UUID
	name string
}

func NewProfession(name string) (*Profession, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Profession{id: uuid.New(), name: name}, nil
}

func ReconstructProfession(id uuid.UUID, name string) *Profession {
	return &Profession{id: id, name: name}
}

func (p *Profession) ID() uuid.UUID { return p.id }
func (p *Profession) Name() string  { return p.name }
