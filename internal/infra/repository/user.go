package repository

import (
	"context"

	"beautypro/internal/domain/user"
	"beautypro/internal/infra"
	"beautypro/internal/pkg/pgconv"
	"beautypro/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, phone_number, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID(), u.Phone().Value(), u.PasswordHash(), u.FullName(), u.Role().String(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*readmodel.AuthorizedUserRM, string, error) {
	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, phone_number, full_name, role, is_active, password_hash
		FROM users
		WHERE phone_number = $1
	`, phone).Scan(&rm.ID, &rm.Phone, &rm.FullName, &rm.Role, &rm.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by phone", err)
	}

	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx, `
		SELECT id, phone_number, full_name, role, is_active
		FROM users
		WHERE id = $1
	`, id).Scan(&rm.ID, &rm.Phone, &rm.FullName, &rm.Role, &rm.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &rm, nil
}
