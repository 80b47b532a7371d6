package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/product"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB       *sqlx.DB
	products product.Repository
}

func NewPGRepository(db *sqlx.DB, products product.Repository) *PGRepository {
	return &PGRepository{DB: db, products: products}
}

func (r *PGRepository) CreateFromBasket(ctx context.Context, userID string) ([]model.Order, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var items []model.BasketItem
	err = tx.SelectContext(ctx, &items,
		`SELECT * FROM basket_items WHERE user_id = $1 ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.EmptyBasket()
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	// Lock product rows in id order so two concurrent placements touching
	// the same products cannot deadlock.
	query, args, err := sqlx.In(`SELECT * FROM products WHERE id IN (?) ORDER BY id FOR UPDATE`, productIDs)
	if err != nil {
		return nil, err
	}
	query = tx.Rebind(query)

	var products []model.Product
	if err := tx.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	productsByID := make(map[string]*model.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	now := time.Now()
	orders := make([]model.Order, 0, len(items))
	for _, item := range items {
		p, ok := productsByID[item.ProductID]
		if !ok {
			return nil, apperrors.NotFound("product %s not found", item.ProductID)
		}
		if p.Stock < item.Quantity {
			return nil, apperrors.InsufficientStock(item.ProductID)
		}

		// Decrement on the transaction so the whole placement commits or
		// rolls back as one.
		updated, err := r.products.DecrementStock(ctx, tx, item.ProductID, item.Quantity)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			// The row lock should make this unreachable; keep the guard so
			// stock can never go negative.
			return nil, apperrors.InsufficientStock(item.ProductID)
		}
		p.Stock = updated.Stock

		order := model.Order{
			BaseModel: model.BaseModel{
				ID:        uuid.New().String(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:    userID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Status:    model.OrderStatusPending,
		}
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO orders (id, user_id, product_id, quantity, status, created_at, updated_at)
            VALUES (:id, :user_id, :product_id, :quantity, :status, :created_at, :updated_at)
        `, order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	itemIDs := make([]string, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}
	query, args, err = sqlx.In(`DELETE FROM basket_items WHERE id IN (?)`, itemIDs)
	if err != nil {
		return nil, err
	}
	query = tx.Rebind(query)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	query := `SELECT * FROM orders ORDER BY created_at ASC, id ASC`
	err := r.DB.SelectContext(ctx, &orders, query)
	return orders, err
}

func (r *PGRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	query := `SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
	err := r.DB.SelectContext(ctx, &orders, query, userID)
	return orders, err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	query := `SELECT * FROM orders WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
