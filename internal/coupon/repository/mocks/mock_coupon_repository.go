package mocks

import (
	"context"

	cpDomain "github.com/ridloal/storefront-demo/internal/coupon/domain"

	"github.com/stretchr/testify/mock"
)

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) ListCoupons(ctx context.Context) ([]cpDomain.Coupon, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]cpDomain.Coupon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCouponRepository) GetCouponByCode(ctx context.Context, code string) (*cpDomain.Coupon, error) {
	args := m.Called(ctx, code)
	if res := args.Get(0); res != nil {
		return res.(*cpDomain.Coupon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCouponRepository) CreateCoupon(ctx context.Context, coupon *cpDomain.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) DeleteCoupon(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
