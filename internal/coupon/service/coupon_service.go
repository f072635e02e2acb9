package service

import (
	"context"
	"errors"
	"fmt"

	cartDomain "github.com/ridloal/storefront-demo/internal/cart/domain"
	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/coupon/domain"
	"github.com/ridloal/storefront-demo/internal/coupon/repository"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

// Pesan user-facing; konsumen menampilkan string ini apa adanya.
const (
	MsgCouponCreated       = "Coupon created."
	MsgDuplicateCouponCode = "A coupon with this code already exists."
	MsgCreateCouponFailed  = "Failed to create coupon."
)

// CouponInvalidator diberi tahu saat kupon dihapus; diimplementasikan oleh
// cart service supaya kupon terpilih yang hilang tidak dipakai lagi.
type CouponInvalidator interface {
	CouponDeleted(code string)
}

type CouponService interface {
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	CreateCoupon(ctx context.Context, coupon domain.Coupon) cartDomain.OpResult
	// DeleteCoupon bersifat idempotent: code yang tidak dikenal adalah no-op.
	DeleteCoupon(ctx context.Context, code string) error
}

type couponServiceImpl struct {
	repo        repository.CouponRepository
	invalidator CouponInvalidator
}

func NewCouponService(repo repository.CouponRepository, invalidator CouponInvalidator) CouponService {
	return &couponServiceImpl{repo: repo, invalidator: invalidator}
}

func (s *couponServiceImpl) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.ListCoupons(ctx)
}

func validateCouponValue(coupon domain.Coupon) (string, bool) {
	if coupon.DiscountValue < 0 {
		return "Discount value must not be negative.", false
	}
	switch coupon.DiscountType {
	case domain.DiscountAmount:
		if coupon.DiscountValue > domain.MaxDiscountAmount {
			return fmt.Sprintf(
				"Amount discounts cannot exceed ₩%s.",
				catalogDomain.FormatNumber(domain.MaxDiscountAmount),
			), false
		}
	case domain.DiscountPercentage:
		if coupon.DiscountValue > domain.MaxDiscountPercentage {
			return fmt.Sprintf(
				"Percentage discounts cannot exceed %d%%.",
				domain.MaxDiscountPercentage,
			), false
		}
	}
	return "", true
}

func (s *couponServiceImpl) CreateCoupon(ctx context.Context, coupon domain.Coupon) cartDomain.OpResult {
	if msg, ok := validateCouponValue(coupon); !ok {
		return cartDomain.OpResult{Success: false, Message: msg}
	}

	if err := s.repo.CreateCoupon(ctx, &coupon); err != nil {
		if errors.Is(err, repository.ErrDuplicateCouponCode) {
			return cartDomain.OpResult{Success: false, Message: MsgDuplicateCouponCode}
		}
		logger.Error("Svc.CreateCoupon: repo error", err)
		return cartDomain.OpResult{Success: false, Message: MsgCreateCouponFailed}
	}
	return cartDomain.OpResult{Success: true, Message: MsgCouponCreated}
}

func (s *couponServiceImpl) DeleteCoupon(ctx context.Context, code string) error {
	if err := s.repo.DeleteCoupon(ctx, code); err != nil {
		logger.Error("Svc.DeleteCoupon: repo error", err)
		return err
	}
	if s.invalidator != nil {
		s.invalidator.CouponDeleted(code)
	}
	return nil
}
