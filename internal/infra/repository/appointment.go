package repository

import (
	"context"
	"time"

	"beautypro/internal/domain/appointment"
	"beautypro/internal/infra"
	"beautypro/internal/pkg/pgconv"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateScheduled inserts a scheduled appointment. The no-overlap guarantee
// lives in the database: the exclusion constraint on (master_id, time range,
// status = 'scheduled') rejects an overlapping insert with an exclusion
// violation, which surfaces here as KindConflict.
func (r *AppointmentRepository) CreateScheduled(ctx context.Context, tx infra.DBTX, a *appointment.Appointment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO appointments (id, client_id, master_id, service_id, starts_at, ends_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, a.ID(), a.ClientID(), a.MasterID(), a.ServiceID(),
		a.Slot().Start(), a.Slot().End(), a.Status().String(), a.CreatedAt(), a.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var (
		clientID, masterID, serviceID uuid.UUID
		startsAt, endsAt              time.Time
		status                        string
		createdAt, updatedAt          time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT client_id, master_id, service_id, starts_at, ends_at, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id).Scan(&clientID, &masterID, &serviceID, &startsAt, &endsAt, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	st, err := appointment.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid appointment status in store", err)
	}
	slot := appointment.SlotBetween(startsAt, endsAt)
	return appointment.Reconstruct(id, clientID, masterID, serviceID, slot, st, createdAt, updatedAt), nil
}

// FindRMByID returns the list-shaped projection of a single appointment,
// with master and service names resolved.
func (r *AppointmentRepository) FindRMByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
	var rm readmodel.AppointmentRM
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.client_id, a.master_id, m.full_name, a.service_id, s.name,
		       a.starts_at, a.ends_at, a.status, a.created_at
		FROM appointments a
		JOIN masters m ON m.id = a.master_id
		JOIN services s ON s.id = a.service_id
		WHERE a.id = $1
	`, id).Scan(&rm.ID, &rm.ClientID, &rm.MasterID, &rm.MasterName, &rm.ServiceID, &rm.ServiceName,
		&rm.StartsAt, &rm.EndsAt, &rm.Status, &rm.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return &rm, nil
}

// ListScheduledSlots returns the busy intervals of a master inside
// [from, to), ordered by start time. Only scheduled appointments block a
// slot; canceled and completed ones do not.
func (r *AppointmentRepository) ListScheduledSlots(ctx context.Context, masterID uuid.UUID, from, to time.Time) ([]appointment.TimeSlot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT starts_at, ends_at
		FROM appointments
		WHERE master_id = $1
		  AND status = 'scheduled'
		  AND starts_at < $3
		  AND ends_at > $2
		ORDER BY starts_at
	`, masterID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled slots", err)
	}
	defer rows.Close()

	var busy []appointment.TimeSlot
	for rows.Next() {
		var startsAt, endsAt time.Time
		if err := rows.Scan(&startsAt, &endsAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan scheduled slot", err)
		}
		busy = append(busy, appointment.SlotBetween(startsAt, endsAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read scheduled slots", err)
	}
	return busy, nil
}

type ListAppointmentsFilter struct {
	Status       *appointment.Status
	UpcomingOnly bool
	Now          time.Time
}

func (r *AppointmentRepository) ListByClient(ctx context.Context, clientID uuid.UUID, filter ListAppointmentsFilter) ([]*readmodel.AppointmentRM, error) {
	var status *string
	if filter.Status != nil {
		s := filter.Status.String()
		status = &s
	}

	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.client_id, a.master_id, m.full_name, a.service_id, s.name,
		       a.starts_at, a.ends_at, a.status, a.created_at
		FROM appointments a
		JOIN masters m ON m.id = a.master_id
		JOIN services s ON s.id = a.service_id
		WHERE a.client_id = $1
		  AND ($2::text IS NULL OR a.status = $2)
		  AND (NOT $3 OR (a.status = 'scheduled' AND a.starts_at > $4))
		ORDER BY a.starts_at
	`, clientID, status, filter.UpcomingOnly, filter.Now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var result []*readmodel.AppointmentRM
	for rows.Next() {
		var rm readmodel.AppointmentRM
		if err := rows.Scan(&rm.ID, &rm.ClientID, &rm.MasterID, &rm.MasterName, &rm.ServiceID, &rm.ServiceName,
			&rm.StartsAt, &rm.EndsAt, &rm.Status, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointments", err)
	}
	return result, nil
}

// UpdateStatusIfScheduled transitions an appointment out of the scheduled
// state. The WHERE clause doubles as the concurrency guard: a row already
// canceled or completed matches nothing and the call reports KindConflict,
// so two racing transitions cannot both succeed.
func (r *AppointmentRepository) UpdateStatusIfScheduled(ctx context.Context, id uuid.UUID, next appointment.Status, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'scheduled'
	`, id, next.String(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment is not scheduled", nil, infra.KindConflict)
	}
	return nil
}
