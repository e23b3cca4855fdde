package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service is a priced, timed offering. The duration feeds slot computation;
// it is whole minutes and strictly positive. Changing it never moves
// appointments that are already booked (their footprint is snapshotted).
type Service struct {
	id           uuid.UUID
	name         string
	priceCents   int64
	durationMin  int
	professionID uuid.UUID
}

func NewService(name string, priceCents int64, durationMin int, professionID uuid.UUID) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Service{
		id:           uuid.New(),
		name:         name,
		priceCents:   priceCents,
		durationMin:  durationMin,
		professionID: professionID,
	}, nil
}

func ReconstructService(id uuid.UUID, name string, priceCents int64, durationMin int, professionID uuid.UUID) *Service {
	return &Service{
		id:           id,
		name:         name,
		priceCents:   priceCents,
		durationMin:  durationMin,
		professionID: professionID,
	}
}

func (s *Service) ID() uuid.UUID           { return s.id }
func (s *Service) Name() string            { return s.name }
func (s *Service) PriceCents() int64       { return s.priceCents }
func (s *Service) DurationMin() int        { return s.durationMin }
func (s *Service) ProfessionID() uuid.UUID { return s.professionID }

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMin) * time.Minute
}
