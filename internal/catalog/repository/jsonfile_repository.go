package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

// jsonFileProductRepository menyimpan katalog sebagai array JSON di satu file.
// State in-memory adalah sumber
// kebenaran; penulisan file hanya best-effort dan kegagalannya cuma di-log.
type jsonFileProductRepository struct {
	path string

	mu       sync.Mutex
	products []domain.Product
}

func NewJSONFileProductRepository(dataDir string, seed []domain.Product) ProductRepository {
	r := &jsonFileProductRepository{path: filepath.Join(dataDir, "products.json")}
	r.products = loadOrSeed(r.path, seed)
	return r
}

// loadOrSeed membaca array produk dari file. File yang tidak ada atau korup
// di-fallback ke seed, bukan error fatal.
func loadOrSeed(path string, seed []domain.Product) []domain.Product {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("ProductRepo: cannot read %s, using seed data: %v", path, err)
		}
		return seed
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		logger.Warn("ProductRepo: corrupt data in %s, using seed data: %v", path, err)
		return seed
	}
	return products
}

func (r *jsonFileProductRepository) persistLocked() {
	data, err := json.MarshalIndent(r.products, "", "  ")
	if err != nil {
		logger.Error("ProductRepo: marshal failed", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		logger.Error("ProductRepo: mkdir failed", err)
		return
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		logger.Error("ProductRepo: write failed", err)
	}
}

func (r *jsonFileProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func (r *jsonFileProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *jsonFileProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, *product)
	r.persistLocked()
	return nil
}

func (r *jsonFileProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = *product
			r.persistLocked()
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *jsonFileProductRepository) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.products[:0:0]
	for _, p := range r.products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	r.products = next
	r.persistLocked()
	return nil
}
