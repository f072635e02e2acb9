package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ridloal/storefront-demo/internal/coupon/domain"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

// jsonFileCouponRepository menyimpan kupon sebagai array JSON di satu file,
// pola yang sama dengan product repository.
type jsonFileCouponRepository struct {
	path string

	mu      sync.Mutex
	coupons []domain.Coupon
}

func NewJSONFileCouponRepository(dataDir string, seed []domain.Coupon) CouponRepository {
	r := &jsonFileCouponRepository{path: filepath.Join(dataDir, "coupons.json")}
	r.coupons = loadCouponsOrSeed(r.path, seed)
	return r
}

func loadCouponsOrSeed(path string, seed []domain.Coupon) []domain.Coupon {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("CouponRepo: cannot read %s, using seed data: %v", path, err)
		}
		return seed
	}

	var coupons []domain.Coupon
	if err := json.Unmarshal(data, &coupons); err != nil {
		logger.Warn("CouponRepo: corrupt data in %s, using seed data: %v", path, err)
		return seed
	}
	return coupons
}

func (r *jsonFileCouponRepository) persistLocked() {
	data, err := json.MarshalIndent(r.coupons, "", "  ")
	if err != nil {
		logger.Error("CouponRepo: marshal failed", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		logger.Error("CouponRepo: mkdir failed", err)
		return
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		logger.Error("CouponRepo: write failed", err)
	}
}

func (r *jsonFileCouponRepository) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupons := make([]domain.Coupon, len(r.coupons))
	copy(coupons, r.coupons)
	return coupons, nil
}

func (r *jsonFileCouponRepository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.coupons {
		if c.Code == code {
			coupon := c
			return &coupon, nil
		}
	}
	return nil, ErrCouponNotFound
}

func (r *jsonFileCouponRepository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.coupons {
		if c.Code == coupon.Code {
			return ErrDuplicateCouponCode
		}
	}
	r.coupons = append(r.coupons, *coupon)
	r.persistLocked()
	return nil
}

func (r *jsonFileCouponRepository) DeleteCoupon(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.coupons[:0:0]
	for _, c := range r.coupons {
		if c.Code != code {
			next = append(next, c)
		}
	}
	r.coupons = next
	r.persistLocked()
	return nil
}
