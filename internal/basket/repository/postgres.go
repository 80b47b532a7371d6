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

func (r *PGRepository) Create(ctx context.Context, item *model.BasketItem) error {
	query := `
        INSERT INTO basket_items (id, user_id, product_id, quantity, created_at, updated_at)
        VALUES (:id, :user_id, :product_id, :quantity, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, item)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id, userID string) (*model.BasketItem, error) {
	var item model.BasketItem
	query := `SELECT * FROM basket_items WHERE id = $1 AND user_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &item, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*model.BasketItem, error) {
	var item model.BasketItem
	query := `SELECT * FROM basket_items WHERE user_id = $1 AND product_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &item, query, userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) FindAllByUser(ctx context.Context, userID string) ([]model.BasketItem, error) {
	var items []model.BasketItem
	query := `SELECT * FROM basket_items WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
	err := r.DB.SelectContext(ctx, &items, query, userID)
	return items, err
}

func (r *PGRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	query := `UPDATE basket_items SET quantity = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, quantity, id)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM basket_items WHERE id = $1", id)
	return err
}

func (r *PGRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM basket_items WHERE user_id = $1", userID)
	return err
}
