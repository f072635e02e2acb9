package repository

import (
	"context"
	"errors"

	"github.com/ridloal/storefront-demo/internal/coupon/domain"
)

var ErrCouponNotFound = errors.New("coupon not found")
var ErrDuplicateCouponCode = errors.New("coupon with this code already exists")

type CouponRepository interface {
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *domain.Coupon) error
	// DeleteCoupon bersifat idempotent: menghapus code yang tidak ada bukan error.
	DeleteCoupon(ctx context.Context, code string) error
}

// SeedCoupons mengisi kupon awal jika repository masih kosong.
func SeedCoupons(ctx context.Context, repo CouponRepository, seed []domain.Coupon) error {
	existing, err := repo.ListCoupons(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range seed {
		if err := repo.CreateCoupon(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
