package repository

import (
	"context"

	"beautypro/internal/domain/catalog"
	"beautypro/internal/infra"
	"beautypro/internal/pkg/pgconv"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MasterRepository struct {
	db *pgxpool.Pool
}

func NewMasterRepository(db *pgxpool.Pool) *MasterRepository {
	return &MasterRepository{db: db}
}

// Create inserts the master row and its service assignments as one unit.
func (r *MasterRepository) Create(ctx context.Context, tx infra.DBTX, m *catalog.Master) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO masters (id, full_name, profession_id, contact_info, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID(), m.FullName(), m.ProfessionID(), m.ContactInfo(), m.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create master", err)
	}

	return r.insertAssignments(ctx, tx, m.ID(), m.ServiceIDs())
}

func (r *MasterRepository) insertAssignments(ctx context.Context, tx infra.DBTX, masterID uuid.UUID, serviceIDs []uuid.UUID) error {
	for _, serviceID := range serviceIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO master_services (master_id, service_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, masterID, serviceID)
		if err != nil {
			return infra.WrapRepoErr("failed to assign service to master", err)
		}
	}
	return nil
}

// ReplaceAssignments swaps the master's service set for the given one.
func (r *MasterRepository) ReplaceAssignments(ctx context.Context, tx infra.DBTX, masterID uuid.UUID, serviceIDs []uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM master_services WHERE master_id = $1`, masterID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear master services", err)
	}
	return r.insertAssignments(ctx, tx, masterID, serviceIDs)
}

func (r *MasterRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.MasterRM, error) {
	var rm readmodel.MasterRM
	err := r.db.QueryRow(ctx, `
		SELECT m.id, m.full_name, m.profession_id, p.name, m.contact_info, m.is_active,
		       COALESCE(array_agg(ms.service_id) FILTER (WHERE ms.service_id IS NOT NULL), '{}')
		FROM masters m
		JOIN professions p ON p.id = m.profession_id
		LEFT JOIN master_services ms ON ms.master_id = m.id
		WHERE m.id = $1
		GROUP BY m.id, p.name
	`, id).Scan(&rm.ID, &rm.FullName, &rm.ProfessionID, &rm.ProfessionName, &rm.ContactInfo, &rm.IsActive, &rm.ServiceIDs)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("master not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find master by ID", err)
	}
	return &rm, nil
}

func (r *MasterRepository) List(ctx context.Context, activeOnly bool) ([]*readmodel.MasterRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.full_name, m.profession_id, p.name, m.contact_info, m.is_active,
		       COALESCE(array_agg(ms.service_id) FILTER (WHERE ms.service_id IS NOT NULL), '{}')
		FROM masters m
		JOIN professions p ON p.id = m.profession_id
		LEFT JOIN master_services ms ON ms.master_id = m.id
		WHERE NOT $1 OR m.is_active
		GROUP BY m.id, p.name
		ORDER BY m.full_name
	`, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list masters", err)
	}
	defer rows.Close()

	return scanMasters(rows)
}

// ListByService returns active masters assigned to the service.
func (r *MasterRepository) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.MasterRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.full_name, m.profession_id, p.name, m.contact_info, m.is_active,
		       COALESCE(array_agg(ms2.service_id) FILTER (WHERE ms2.service_id IS NOT NULL), '{}')
		FROM masters m
		JOIN professions p ON p.id = m.profession_id
		JOIN master_services ms ON ms.master_id = m.id AND ms.service_id = $1
		LEFT JOIN master_services ms2 ON ms2.master_id = m.id
		WHERE m.is_active
		GROUP BY m.id, p.name
		ORDER BY m.full_name
	`, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list masters by service", err)
	}
	defer rows.Close()

	return scanMasters(rows)
}

func scanMasters(rows pgx.Rows) ([]*readmodel.MasterRM, error) {
	var result []*readmodel.MasterRM
	for rows.Next() {
		var rm readmodel.MasterRM
		if err := rows.Scan(&rm.ID, &rm.FullName, &rm.ProfessionID, &rm.ProfessionName, &rm.ContactInfo, &rm.IsActive, &rm.ServiceIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan master", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read masters", err)
	}
	return result, nil
}

type UpdateMasterParams struct {
	FullName     *string
	ProfessionID *uuid.UUID
	ContactInfo  *string
}

func (r *MasterRepository) Update(ctx context.Context, id uuid.UUID, params UpdateMasterParams) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE masters SET
			full_name     = COALESCE($2, full_name),
			profession_id = COALESCE($3, profession_id),
			contact_info  = COALESCE($4, contact_info)
		WHERE id = $1
	`, id, params.FullName, params.ProfessionID, params.ContactInfo)
	if err != nil {
		return infra.WrapRepoErr("failed to update master", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("master not found", nil, infra.KindNotFound)
	}
	return nil
}

// Deactivate is the soft delete: appointment history keeps referencing the
// row, the master just stops accepting bookings.
func (r *MasterRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE masters SET is_active = FALSE WHERE id = $1
	`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate master", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("master not found", nil, infra.KindNotFound)
	}
	return nil
}
