package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/catalog/repository"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

var ErrInvalidProduct = errors.New("invalid product data")

// StockProvider menjawab sisa stok produk dengan memperhitungkan isi cart.
// Diimplementasikan oleh cart service.
type StockProvider interface {
	RemainingStockFor(product domain.Product) int
}

type CatalogService interface {
	ListProducts(ctx context.Context, searchTerm string, isAdmin bool) ([]domain.ProductListing, error)
	GetProductDetails(ctx context.Context, productID string) (*domain.Product, error)

	// Operasi admin
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	AddProductDiscount(ctx context.Context, productID string, discount domain.Discount) (*domain.Product, error)
	RemoveProductDiscount(ctx context.Context, productID string, index int) (*domain.Product, error)
}

type catalogServiceImpl struct {
	repo  repository.ProductRepository
	stock StockProvider
}

func NewCatalogService(repo repository.ProductRepository, stock StockProvider) CatalogService {
	return &catalogServiceImpl{repo: repo, stock: stock}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, searchTerm string, isAdmin bool) ([]domain.ProductListing, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		logger.Error("Svc.ListProducts: repo error", err)
		return nil, err
	}

	filtered := domain.FilterProducts(products, searchTerm)

	listings := make([]domain.ProductListing, 0, len(filtered))
	for _, p := range filtered {
		product := p
		remaining := s.stock.RemainingStockFor(product)
		listings = append(listings, domain.ProductListing{
			Product:        product,
			RemainingStock: remaining,
			DisplayPrice: domain.FormatPrice(product.Price, domain.PriceContext{
				IsAdmin:        isAdmin,
				Product:        &product,
				RemainingStock: &remaining,
			}),
		})
	}
	return listings, nil
}

func (s *catalogServiceImpl) GetProductDetails(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, productID)
}

// validateProduct menegakkan batas form admin: harga & stok non-negatif,
// stok maksimum, dan tiap tier discount masuk akal.
func validateProduct(p *domain.Product) error {
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	}
	if p.Stock > domain.MaxStock {
		return fmt.Errorf("%w: stock must not exceed %d", ErrInvalidProduct, domain.MaxStock)
	}
	for _, d := range p.Discounts {
		if err := validateDiscount(d); err != nil {
			return err
		}
	}
	return nil
}

func validateDiscount(d domain.Discount) error {
	if d.Quantity < 1 {
		return fmt.Errorf("%w: discount quantity must be at least 1", ErrInvalidProduct)
	}
	if d.Rate < 0 || d.Rate > 1 {
		return fmt.Errorf("%w: discount rate must be between 0 and 1", ErrInvalidProduct)
	}
	return nil
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Stock:         req.Stock,
		Discounts:     req.Discounts,
		IsRecommended: req.IsRecommended,
	}
	if product.Discounts == nil {
		product.Discounts = []domain.Discount{}
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		logger.Error("Svc.CreateProduct: repo error", err)
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Discounts != nil {
		product.Discounts = *req.Discounts
	}
	if req.IsRecommended != nil {
		product.IsRecommended = *req.IsRecommended
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		logger.Error("Svc.UpdateProduct: repo error", err)
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, productID string) error {
	return s.repo.DeleteProduct(ctx, productID)
}

func (s *catalogServiceImpl) AddProductDiscount(ctx context.Context, productID string, discount domain.Discount) (*domain.Product, error) {
	if err := validateDiscount(discount); err != nil {
		return nil, err
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Discounts = append(product.Discounts, discount)
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		logger.Error("Svc.AddProductDiscount: repo error", err)
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) RemoveProductDiscount(ctx context.Context, productID string, index int) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Index di luar rentang adalah no-op, bukan error
	if index < 0 || index >= len(product.Discounts) {
		return product, nil
	}

	next := make([]domain.Discount, 0, len(product.Discounts)-1)
	next = append(next, product.Discounts[:index]...)
	next = append(next, product.Discounts[index+1:]...)
	product.Discounts = next

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		logger.Error("Svc.RemoveProductDiscount: repo error", err)
		return nil, err
	}
	return product, nil
}
