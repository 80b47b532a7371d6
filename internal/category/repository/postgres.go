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

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, parent_id, name, description, image, created_at, updated_at)
        VALUES (:id, :parent_id, :name, :description, :image, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT * FROM categories ORDER BY name ASC`
	err := r.DB.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *PGRepository) FindChildIDs(ctx context.Context, id string) ([]string, error) {
	var ids []string
	query := `SELECT id FROM categories WHERE parent_id = $1 ORDER BY name ASC`
	err := r.DB.SelectContext(ctx, &ids, query, id)
	return ids, err
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET parent_id = :parent_id,
            name = :name,
            description = :description,
            image = :image,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) HasProducts(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE category_id = $1`, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PGRepository) DeleteDetachingChildren(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Children become root categories instead of being cascaded away.
	if _, err := tx.ExecContext(ctx, `UPDATE categories SET parent_id = NULL, updated_at = NOW() WHERE parent_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}
