package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/go-shop/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (id, email, password, full_name, role, refresh_token, created_at, updated_at)
        VALUES (:id, :email, :password, :full_name, :role, :refresh_token, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE email = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *PGRepository) FindAllByRole(ctx context.Context, role string) ([]model.User, error) {
	var users []model.User
	query := `SELECT * FROM users WHERE role = $1 ORDER BY created_at ASC`
	err := r.DB.SelectContext(ctx, &users, query, role)
	return users, err
}

func (r *PGRepository) Update(ctx context.Context, u *model.User) error {
	query := `
        UPDATE users
        SET email = :email,
            password = :password,
            full_name = :full_name,
            role = :role,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *PGRepository) UpdateRefreshToken(ctx context.Context, userID string, token *string) error {
	query := `UPDATE users SET refresh_token = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, token, userID)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}
