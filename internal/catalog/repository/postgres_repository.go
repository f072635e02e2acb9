package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

type postgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

// Discounts disimpan sebagai JSONB agar urutan tier terjaga.
func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	var p domain.Product
	var discounts []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &discounts, &p.IsRecommended); err != nil {
		return nil, err
	}
	if len(discounts) > 0 {
		if err := json.Unmarshal(discounts, &p.Discounts); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, description, price, stock, discounts, is_recommended FROM products ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, description, price, stock, discounts, is_recommended FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	return p, nil
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `INSERT INTO products (id, name, description, price, stock, discounts, is_recommended)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	discounts, err := json.Marshal(product.Discounts)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock, discounts, product.IsRecommended)
	if err != nil {
		logger.Error("CreateProduct: insert failed", err)
		return err
	}
	return nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `UPDATE products SET name = $2, description = $3, price = $4, stock = $5, discounts = $6, is_recommended = $7
              WHERE id = $1`

	discounts, err := json.Marshal(product.Discounts)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock, discounts, product.IsRecommended)
	if err != nil {
		logger.Error("UpdateProduct: update failed", err)
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id string) error {
	// Idempotent: nol baris terhapus bukan error
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.Error("DeleteProduct: delete failed", err)
	}
	return err
}
