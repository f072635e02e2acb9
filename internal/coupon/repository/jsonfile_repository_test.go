package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridloal/storefront-demo/internal/coupon/domain"
)

func TestJSONFileCouponRepository(t *testing.T) {
	ctx := context.TODO()
	seed := domain.DefaultCoupons()

	t.Run("Missing file starts from seed", func(t *testing.T) {
		repo := NewJSONFileCouponRepository(t.TempDir(), seed)

		coupons, err := repo.ListCoupons(ctx)
		assert.NoError(t, err)
		assert.Len(t, coupons, len(seed))
	})

	t.Run("Corrupt file falls back to seed", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "coupons.json"), []byte("oops"), 0o644))

		repo := NewJSONFileCouponRepository(dir, seed)
		coupons, err := repo.ListCoupons(ctx)
		assert.NoError(t, err)
		assert.Len(t, coupons, len(seed))
	})

	t.Run("Duplicate code is rejected", func(t *testing.T) {
		repo := NewJSONFileCouponRepository(t.TempDir(), seed)

		err := repo.CreateCoupon(ctx, &domain.Coupon{
			Name: "Dup", Code: "AMOUNT5000",
			DiscountType: domain.DiscountAmount, DiscountValue: 1000,
		})
		assert.ErrorIs(t, err, ErrDuplicateCouponCode)
	})

	t.Run("Get by code", func(t *testing.T) {
		repo := NewJSONFileCouponRepository(t.TempDir(), seed)

		coupon, err := repo.GetCouponByCode(ctx, "PERCENT10")
		assert.NoError(t, err)
		assert.Equal(t, domain.DiscountPercentage, coupon.DiscountType)

		_, err = repo.GetCouponByCode(ctx, "nope")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})

	t.Run("Delete is idempotent and persists", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewJSONFileCouponRepository(dir, seed)

		assert.NoError(t, repo.DeleteCoupon(ctx, "PERCENT10"))
		assert.NoError(t, repo.DeleteCoupon(ctx, "PERCENT10"))

		reloaded := NewJSONFileCouponRepository(dir, seed)
		_, err := reloaded.GetCouponByCode(ctx, "PERCENT10")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})
}
