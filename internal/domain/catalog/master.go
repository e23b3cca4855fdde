package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Master is a staff member performing services of one profession. Masters are
// soft-deleted: the active flag excludes them from booking while keeping them
// resolvable for appointment history.
type Master struct {
	id           uuid.UUID
	fullName     string
	professionID uuid.UUID
	contactInfo  *string
	isActive     bool
	serviceIDs   []uuid.UUID
}

func NewMaster(fullName string, professionID uuid.UUID, contactInfo *string, serviceIDs []uuid.UUID) (*Master, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyName
	}

	return &Master{
		id:           uuid.New(),
		fullName:     fullName,
		professionID: professionID,
		contactInfo:  contactInfo,
		isActive:     true,
		serviceIDs:   serviceIDs,
	}, nil
}

func ReconstructMaster(
	id uuid.UUID,
	fullName string,
	professionID uuid.UUID,
	contactInfo *string,
	isActive bool,
	serviceIDs []uuid.UUID,
) *Master {
	return &Master{
		id:           id,
		fullName:     fullName,
		professionID: professionID,
		contactInfo:  contactInfo,
		isActive:     isActive,
		serviceIDs:   serviceIDs,
	}
}

// Performs reports whether the service is in the master's assigned set.
func (m *Master) Performs(serviceID uuid.UUID) bool {
	for _, id := range m.serviceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

func (m *Master) Deactivate() {
	m.isActive = false
}

func (m *Master) ID() uuid.UUID            { return m.id }
func (m *Master) FullName() string         { return m.fullName }
func (m *Master) ProfessionID() uuid.UUID  { return m.professionID }
func (m *Master) ContactInfo() *string     { return m.contactInfo }
func (m *Master) IsActive() bool           { return m.isActive }
func (m *Master) ServiceIDs() []uuid.UUID  { return m.serviceIDs }
