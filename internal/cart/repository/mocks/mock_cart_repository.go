package mocks

import (
	"context"

	cartDomain "github.com/ridloal/storefront-demo/internal/cart/domain"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) LoadCart(ctx context.Context) ([]cartDomain.CartItem, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]cartDomain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) SaveCart(ctx context.Context, items []cartDomain.CartItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
