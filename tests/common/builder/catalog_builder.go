//go:build unit || e2e

package builder

import (
	"beautypro/internal/domain/catalog"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID           uuid.UUID
	Name         string
	PriceCents   int64
	DurationMin  int
	ProfessionID uuid.UUID
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:           uuid.New(),
		Name:         "Women's Haircut",
		PriceCents:   450000,
		DurationMin:  60,
		ProfessionID: uuid.New(),
	}
}

func (s *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	return catalog.NewService(s.Name, s.PriceCents, s.DurationMin, s.ProfessionID)
}

func (s *ServiceBuilder) BuildReadModel() *readmodel.ServiceRM {
	return &readmodel.ServiceRM{
		ID:           s.ID,
		Name:         s.Name,
		PriceCents:   s.PriceCents,
		DurationMin:  s.DurationMin,
		ProfessionID: s.ProfessionID,
	}
}

func (s *ServiceBuilder) WithName(name string) *ServiceBuilder {
	s.Name = name
	return s
}

func (s *ServiceBuilder) WithDuration(minutes int) *ServiceBuilder {
	s.DurationMin = minutes
	return s
}

func (s *ServiceBuilder) WithProfession(professionID uuid.UUID) *ServiceBuilder {
	s.ProfessionID = professionID
	return s
}

type MasterBuilder struct {
	ID             uuid.UUID
	FullName       string
	ProfessionID   uuid.UUID
	ProfessionName string
	ContactInfo    *string
	IsActive       bool
	ServiceIDs     []uuid.UUID
}

func NewMasterBuilder() *MasterBuilder {
	return &MasterBuilder{
		ID:             uuid.New(),
		FullName:       "Anna Petrova",
		ProfessionID:   uuid.New(),
		ProfessionName: "Hairdresser",
		IsActive:       true,
		ServiceIDs:     []uuid.UUID{},
	}
}

func (m *MasterBuilder) BuildDomain() (*catalog.Master, error) {
	return catalog.NewMaster(m.FullName, m.ProfessionID, m.ContactInfo, m.ServiceIDs)
}

func (m *MasterBuilder) BuildReadModel() *readmodel.MasterRM {
	return &readmodel.MasterRM{
		ID:             m.ID,
		FullName:       m.FullName,
		ProfessionID:   m.ProfessionID,
		ProfessionName: m.ProfessionName,
		ContactInfo:    m.ContactInfo,
		IsActive:       m.IsActive,
		ServiceIDs:     m.ServiceIDs,
	}
}

func (m *MasterBuilder) WithProfession(professionID uuid.UUID) *MasterBuilder {
	m.ProfessionID = professionID
	return m
}

func (m *MasterBuilder) WithServices(serviceIDs ...uuid.UUID) *MasterBuilder {
	m.ServiceIDs = serviceIDs
	return m
}

func (m *MasterBuilder) AsInactive() *MasterBuilder {
	m.IsActive = false
	return m
}
