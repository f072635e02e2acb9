package repository

import (
	"context"
	"errors"

	"github.com/ridloal/storefront-demo/internal/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	// DeleteProduct bersifat idempotent: menghapus ID yang tidak ada bukan error.
	DeleteProduct(ctx context.Context, id string) error
}

// SeedProducts mengisi katalog awal jika repository masih kosong.
func SeedProducts(ctx context.Context, repo ProductRepository, seed []domain.Product) error {
	existing, err := repo.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range seed {
		if err := repo.CreateProduct(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
