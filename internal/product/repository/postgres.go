package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (id, category_id, name, description, price, stock, image, created_at, updated_at)
        VALUES (:id, :category_id, :name, :description, :price, :stock, :image, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM products" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &products, args)
	if err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *PGRepository) BatchFindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	var products []model.Product
	err = r.DB.SelectContext(ctx, &products, query, args...)
	return products, err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET category_id = :category_id,
            name = :name,
            description = :description,
            price = :price,
            stock = :stock,
            image = :image,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *PGRepository) DecrementStock(ctx context.Context, ext sqlx.ExtContext, id string, qty int) (*model.Product, error) {
	var product model.Product
	query := `
        UPDATE products
        SET stock = stock - $1, updated_at = NOW()
        WHERE id = $2 AND stock >= $1
        RETURNING *
    `
	err := sqlx.GetContext(ctx, ext, &product, query, qty, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Out of stock or id not found; the caller disambiguates.
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
