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

// CatalogRepository serves the read-mostly offering tables: professions and
// services.
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListProfessions(ctx context.Context) ([]*readmodel.ProfessionRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name FROM professions ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list professions", err)
	}
	defer rows.Close()

	return scanProfessions(rows)
}

func scanProfessions(rows pgx.Rows) ([]*readmodel.ProfessionRM, error) {
	var result []*readmodel.ProfessionRM
	for rows.Next() {
		var rm readmodel.ProfessionRM
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan profession", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read professions", err)
	}
	return result, nil
}

func (r *CatalogRepository) ListServices(ctx context.Context, professionID *uuid.UUID) ([]*readmodel.ServiceRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price_cents, duration_min, profession_id
		FROM services
		WHERE $1::uuid IS NULL OR profession_id = $1
		ORDER BY name
	`, professionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// ListServicesByMaster returns the services currently assigned to a master.
func (r *CatalogRepository) ListServicesByMaster(ctx context.Context, masterID uuid.UUID) ([]*readmodel.ServiceRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.price_cents, s.duration_min, s.profession_id
		FROM services s
		JOIN master_services ms ON ms.service_id = s.id
		WHERE ms.master_id = $1
		ORDER BY s.name
	`, masterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list master services", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

func scanServices(rows pgx.Rows) ([]*readmodel.ServiceRM, error) {
	var result []*readmodel.ServiceRM
	for rows.Next() {
		var rm readmodel.ServiceRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.PriceCents, &rm.DurationMin, &rm.ProfessionID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	return result, nil
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
	var rm readmodel.ServiceRM
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price_cents, duration_min, profession_id
		FROM services
		WHERE id = $1
	`, id).Scan(&rm.ID, &rm.Name, &rm.PriceCents, &rm.DurationMin, &rm.ProfessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &rm, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO services (id, name, price_cents, duration_min, profession_id)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID(), s.Name(), s.PriceCents(), s.DurationMin(), s.ProfessionID())
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

type UpdateServiceParams struct {
	Name         *string
	PriceCents   *int64
	DurationMin  *int
	ProfessionID *uuid.UUID
}

func (r *CatalogRepository) UpdateService(ctx context.Context, id uuid.UUID, params UpdateServiceParams) (*readmodel.ServiceRM, error) {
	var rm readmodel.ServiceRM
	err := r.db.QueryRow(ctx, `
		UPDATE services SET
			name          = COALESCE($2, name),
			price_cents   = COALESCE($3, price_cents),
			duration_min  = COALESCE($4, duration_min),
			profession_id = COALESCE($5, profession_id)
		WHERE id = $1
		RETURNING id, name, price_cents, duration_min, profession_id
	`, id, params.Name, params.PriceCents, params.DurationMin, params.ProfessionID).
		Scan(&rm.ID, &rm.Name, &rm.PriceCents, &rm.DurationMin, &rm.ProfessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update service", err)
	}
	return &rm, nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
