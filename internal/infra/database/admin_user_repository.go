package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/santaan/crm-api/internal/entity"
)

type AdminUserRepository struct {
	DB *sql.DB
}

func NewAdminUserRepository(db *sql.DB) *AdminUserRepository {
	return &AdminUserRepository{DB: db}
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := `SELECT email, role, created_at FROM admin_users WHERE email = lower($1) LIMIT 1`

	var user entity.AdminUser
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&user.Email, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAdminUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
