package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ridloal/storefront-demo/internal/cart/domain"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

// CartRepository menyimpan snapshot isi cart. State in-memory di cart service
// selalu menjadi sumber kebenaran; repository ini hanya durable copy.
type CartRepository interface {
	// LoadCart mengembalikan cart kosong (bukan error) saat snapshot tidak
	// ada atau korup.
	LoadCart(ctx context.Context) ([]domain.CartItem, error)
	// SaveCart dengan cart kosong menghapus snapshot tersimpan.
	SaveCart(ctx context.Context, items []domain.CartItem) error
}

type jsonFileCartRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileCartRepository(dataDir string) CartRepository {
	return &jsonFileCartRepository{path: filepath.Join(dataDir, "cart.json")}
}

func (r *jsonFileCartRepository) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("CartRepo: cannot read %s, starting with empty cart: %v", r.path, err)
		}
		return []domain.CartItem{}, nil
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("CartRepo: corrupt data in %s, starting with empty cart: %v", r.path, err)
		return []domain.CartItem{}, nil
	}
	return items, nil
}

func (r *jsonFileCartRepository) SaveCart(ctx context.Context, items []domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(items) == 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}
