package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-demo/internal/cart/domain"
	cartMocks "github.com/ridloal/storefront-demo/internal/cart/repository/mocks"
	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	catalogRepo "github.com/ridloal/storefront-demo/internal/catalog/repository"
	catalogMocks "github.com/ridloal/storefront-demo/internal/catalog/repository/mocks"
	couponDomain "github.com/ridloal/storefront-demo/internal/coupon/domain"
	couponRepo "github.com/ridloal/storefront-demo/internal/coupon/repository"
	couponMocks "github.com/ridloal/storefront-demo/internal/coupon/repository/mocks"
)

// newTestCartService merakit cart service dengan mock repo, tanpa scheduler.
func newTestCartService(t *testing.T) (CartService, *catalogMocks.MockProductRepository, *couponMocks.MockCouponRepository) {
	t.Helper()

	mockProductRepo := new(catalogMocks.MockProductRepository)
	mockCouponRepo := new(couponMocks.MockCouponRepository)
	mockCartRepo := new(cartMocks.MockCartRepository)

	mockCartRepo.On("LoadCart", mock.Anything).Return([]domain.CartItem{}, nil).Once()
	// Save fire-and-forget boleh terjadi kapan saja
	mockCartRepo.On("SaveCart", mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewCartService(mockProductRepo, mockCouponRepo, mockCartRepo, "")
	return svc, mockProductRepo, mockCouponRepo
}

func testProduct(id string, price, stock int) *catalogDomain.Product {
	return &catalogDomain.Product{
		ID:        id,
		Name:      "Product " + id,
		Price:     price,
		Stock:     stock,
		Discounts: []catalogDomain.Discount{},
	}
}

func TestCartService_AddToCart(t *testing.T) {
	ctx := context.TODO()

	t.Run("Successful add", func(t *testing.T) {
		svc, mockProductRepo, _ := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Once()

		res := svc.AddToCart(ctx, "p1")
		assert.True(t, res.Success)
		assert.Equal(t, MsgAddedToCart, res.Message)
		assert.Equal(t, 1, svc.TotalItemCount())
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Repeated add increments quantity", func(t *testing.T) {
		svc, mockProductRepo, _ := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Twice()

		svc.AddToCart(ctx, "p1")
		svc.AddToCart(ctx, "p1")

		items := svc.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Insufficient stock", func(t *testing.T) {
		svc, mockProductRepo, _ := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 1), nil).Twice()

		res := svc.AddToCart(ctx, "p1")
		assert.True(t, res.Success)

		// Stok 1, sudah 1 di cart: sisa 0
		res = svc.AddToCart(ctx, "p1")
		assert.False(t, res.Success)
		assert.Equal(t, MsgInsufficientStock, res.Message)
		assert.Equal(t, 1, svc.TotalItemCount())
	})

	t.Run("Unknown product", func(t *testing.T) {
		svc, mockProductRepo, _ := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "nope").Return(nil, catalogRepo.ErrProductNotFound).Once()

		res := svc.AddToCart(ctx, "nope")
		assert.False(t, res.Success)
		assert.Equal(t, MsgProductNotFound, res.Message)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.TODO()

	t.Run("Item not in cart", func(t *testing.T) {
		svc, _, _ := newTestCartService(t)

		res := svc.UpdateQuantity(ctx, "p1", 3)
		assert.False(t, res.Success)
		assert.Equal(t, MsgItemNotInCart, res.Message)
	})

	t.Run("Quantity beyond stock is rejected with count", func(t *testing.T) {
		svc, mockProductRepo, _ := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Once()
		svc.AddToCart(ctx, "p1")

		res := svc.UpdateQuantity(ctx, "p1", 21)
		assert.False(t, res.Success)
		assert.Equal(t, "Only 20 left in stock.", res.Message)
		assert.Equal(t, 1, svc.TotalItemCount())
	})

	t.Run("Successful update", func(t *testing.T) {
		svc, mockProductRepo, _ := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Once()
		svc.AddToCart(ctx, "p1")

		res := svc.UpdateQuantity(ctx, "p1", 5)
		assert.True(t, res.Success)
		assert.Equal(t, 5, svc.TotalItemCount())
	})

	t.Run("Zero quantity removes the line", func(t *testing.T) {
		svc, mockProductRepo, _ := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Once()
		svc.AddToCart(ctx, "p1")

		res := svc.UpdateQuantity(ctx, "p1", 0)
		assert.True(t, res.Success)
		assert.Empty(t, svc.Items())
	})
}

func TestCartService_ApplyCoupon(t *testing.T) {
	ctx := context.TODO()
	percent10 := &couponDomain.Coupon{
		Name: "10% off", Code: "PERCENT10",
		DiscountType: couponDomain.DiscountPercentage, DiscountValue: 10,
	}
	amount5000 := &couponDomain.Coupon{
		Name: "5,000 off", Code: "AMOUNT5000",
		DiscountType: couponDomain.DiscountAmount, DiscountValue: 5000,
	}

	t.Run("Unknown coupon", func(t *testing.T) {
		svc, _, mockCouponRepo := newTestCartService(t)
		mockCouponRepo.On("GetCouponByCode", ctx, "nope").Return(nil, couponRepo.ErrCouponNotFound).Once()

		res := svc.ApplyCoupon(ctx, "nope")
		assert.False(t, res.Success)
		assert.Equal(t, MsgCouponNotFound, res.Message)
	})

	t.Run("Percentage coupon below minimum order", func(t *testing.T) {
		svc, mockProductRepo, mockCouponRepo := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 9000, 20), nil).Once()
		svc.AddToCart(ctx, "p1")

		mockCouponRepo.On("GetCouponByCode", ctx, "PERCENT10").Return(percent10, nil).Once()

		res := svc.ApplyCoupon(ctx, "PERCENT10")
		assert.False(t, res.Success)
		assert.Equal(t, "Percentage coupons require a minimum order of ₩10,000.", res.Message)
		assert.Nil(t, svc.SelectedCoupon())
	})

	t.Run("Amount coupon valid regardless of total", func(t *testing.T) {
		svc, mockProductRepo, mockCouponRepo := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 1000, 20), nil).Once()
		svc.AddToCart(ctx, "p1")

		mockCouponRepo.On("GetCouponByCode", ctx, "AMOUNT5000").Return(amount5000, nil).Once()

		res := svc.ApplyCoupon(ctx, "AMOUNT5000")
		assert.True(t, res.Success)
		assert.Equal(t, MsgCouponApplied, res.Message)
		// Amount coupon tidak pernah membuat total negatif
		assert.Equal(t, 0, svc.Totals().TotalAfterDiscount)
	})

	t.Run("Valid percentage coupon reflected in totals", func(t *testing.T) {
		svc, mockProductRepo, mockCouponRepo := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Once()
		svc.AddToCart(ctx, "p1")

		mockCouponRepo.On("GetCouponByCode", ctx, "PERCENT10").Return(percent10, nil).Once()

		res := svc.ApplyCoupon(ctx, "PERCENT10")
		assert.True(t, res.Success)

		total := svc.Totals()
		assert.Equal(t, 10000, total.TotalBeforeDiscount)
		assert.Equal(t, 9000, total.TotalAfterDiscount)
	})

	t.Run("Deleted coupon no longer counts", func(t *testing.T) {
		svc, mockProductRepo, mockCouponRepo := newTestCartService(t)
		mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Once()
		svc.AddToCart(ctx, "p1")

		mockCouponRepo.On("GetCouponByCode", ctx, "PERCENT10").Return(percent10, nil).Once()
		svc.ApplyCoupon(ctx, "PERCENT10")

		svc.CouponDeleted("PERCENT10")
		assert.Nil(t, svc.SelectedCoupon())
		assert.Equal(t, 10000, svc.Totals().TotalAfterDiscount)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.TODO()
	svc, mockProductRepo, mockCouponRepo := newTestCartService(t)

	mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 20000, 20), nil).Once()
	svc.AddToCart(ctx, "p1")

	amount := &couponDomain.Coupon{
		Name: "5,000 off", Code: "AMOUNT5000",
		DiscountType: couponDomain.DiscountAmount, DiscountValue: 5000,
	}
	mockCouponRepo.On("GetCouponByCode", ctx, "AMOUNT5000").Return(amount, nil).Once()
	svc.ApplyCoupon(ctx, "AMOUNT5000")

	svc.ClearCart(ctx)
	assert.Empty(t, svc.Items())
	assert.Nil(t, svc.SelectedCoupon())
	assert.Equal(t, 0, svc.Totals().TotalAfterDiscount)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	ctx := context.TODO()
	svc, mockProductRepo, _ := newTestCartService(t)

	mockProductRepo.On("GetProductByID", ctx, "p1").Return(testProduct("p1", 10000, 20), nil).Once()
	svc.AddToCart(ctx, "p1")

	svc.RemoveFromCart(ctx, "p1")
	assert.Empty(t, svc.Items())

	// Idempotent: menghapus yang sudah tidak ada bukan error
	svc.RemoveFromCart(ctx, "p1")
	assert.Empty(t, svc.Items())
}
