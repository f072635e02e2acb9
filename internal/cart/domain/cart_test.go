package domain

import (
	"testing"

	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	couponDomain "github.com/ridloal/storefront-demo/internal/coupon/domain"
	"github.com/stretchr/testify/assert"
)

func tieredProduct() catalogDomain.Product {
	return catalogDomain.Product{
		ID:    "p1",
		Name:  "Product 1",
		Price: 10000,
		Stock: 50,
		Discounts: []catalogDomain.Discount{
			{Quantity: 10, Rate: 0.1},
			{Quantity: 20, Rate: 0.2},
		},
	}
}

func plainProduct(id string, price int) catalogDomain.Product {
	return catalogDomain.Product{ID: id, Name: "Product " + id, Price: price, Stock: 50}
}

func TestMaxApplicableDiscount(t *testing.T) {
	t.Run("No qualifying tier gives zero", func(t *testing.T) {
		item := CartItem{Product: tieredProduct(), Quantity: 5}
		assert.Equal(t, 0.0, MaxApplicableDiscount(item, []CartItem{item}))
	})

	t.Run("Highest qualifying tier wins", func(t *testing.T) {
		item := CartItem{Product: tieredProduct(), Quantity: 15}
		// qty 15: tier 10 terpenuhi, tier 20 belum; bulk bonus ikut (qty >= 10)
		assert.InDelta(t, 0.15, MaxApplicableDiscount(item, []CartItem{item}), 1e-9)
	})

	t.Run("Bulk bonus applies cart-wide", func(t *testing.T) {
		// Line tanpa tier sendiri tetap dapat bonus karena line LAIN >= 10
		small := CartItem{Product: plainProduct("p2", 5000), Quantity: 1}
		bulk := CartItem{Product: plainProduct("p3", 1000), Quantity: 12}
		cart := []CartItem{small, bulk}

		assert.InDelta(t, BulkPurchaseAdditionalDiscount, MaxApplicableDiscount(small, cart), 1e-9)
		assert.InDelta(t, BulkPurchaseAdditionalDiscount, MaxApplicableDiscount(bulk, cart), 1e-9)
	})

	t.Run("No bulk bonus below threshold", func(t *testing.T) {
		item := CartItem{Product: plainProduct("p2", 5000), Quantity: 9}
		assert.Equal(t, 0.0, MaxApplicableDiscount(item, []CartItem{item}))
	})

	t.Run("Clamped at max discount rate", func(t *testing.T) {
		p := plainProduct("p4", 1000)
		p.Discounts = []catalogDomain.Discount{{Quantity: 10, Rate: 0.48}}
		item := CartItem{Product: p, Quantity: 10}
		// 0.48 + 0.05 bonus > 0.5, harus dipotong ke 0.5
		assert.Equal(t, MaxDiscountRate, MaxApplicableDiscount(item, []CartItem{item}))
	})

	t.Run("Always within zero to max", func(t *testing.T) {
		quantities := []int{1, 5, 9, 10, 15, 20, 50, 100}
		for _, q := range quantities {
			item := CartItem{Product: tieredProduct(), Quantity: q}
			rate := MaxApplicableDiscount(item, []CartItem{item})
			assert.GreaterOrEqual(t, rate, 0.0)
			assert.LessOrEqual(t, rate, MaxDiscountRate)
		}
	})
}

func TestItemTotal(t *testing.T) {
	t.Run("Tier discount only", func(t *testing.T) {
		// price 10000, tier {20: 0.2}, qty 20, cart lain tanpa bulk line
		item := CartItem{Product: tieredProduct(), Quantity: 20}
		assert.Equal(t, 160000, ItemTotal(item, nil))
	})

	t.Run("Tier discount plus bulk bonus from own line", func(t *testing.T) {
		// Saat line-nya sendiri ada di cart, qty 20 juga membuka bulk bonus:
		// rate = min(0.2+0.05, 0.5) = 0.25
		item := CartItem{Product: tieredProduct(), Quantity: 20}
		assert.Equal(t, 150000, ItemTotal(item, []CartItem{item}))
	})

	t.Run("Bulk bonus alone", func(t *testing.T) {
		// qty 12 tanpa tier: rate 0.05
		p := plainProduct("p2", 3000)
		item := CartItem{Product: p, Quantity: 12}
		assert.Equal(t, 34200, ItemTotal(item, []CartItem{item})) // round(3000*12*0.95)
	})

	t.Run("Discount never increases price", func(t *testing.T) {
		for _, q := range []int{1, 9, 10, 20, 33} {
			item := CartItem{Product: tieredProduct(), Quantity: q}
			cart := []CartItem{item}
			assert.LessOrEqual(t, ItemTotal(item, cart), item.Product.Price*item.Quantity)
		}
	})
}

func TestComputeCartTotal(t *testing.T) {
	t.Run("Empty cart", func(t *testing.T) {
		total := ComputeCartTotal(nil, nil)
		assert.Equal(t, 0, total.TotalBeforeDiscount)
		assert.Equal(t, 0, total.TotalAfterDiscount)
	})

	t.Run("Without coupon equals sum of item totals", func(t *testing.T) {
		cart := []CartItem{
			{Product: tieredProduct(), Quantity: 3},
			{Product: plainProduct("p2", 20000), Quantity: 2},
		}
		total := ComputeCartTotal(cart, nil)

		assert.Equal(t, 70000, total.TotalBeforeDiscount)
		sum := 0
		for _, item := range cart {
			sum += ItemTotal(item, cart)
		}
		assert.Equal(t, sum, total.TotalAfterDiscount)
	})

	t.Run("Coupon applied once to aggregate", func(t *testing.T) {
		cart := []CartItem{
			{Product: plainProduct("p1", 10000), Quantity: 1},
			{Product: plainProduct("p2", 20000), Quantity: 1},
		}
		coupon := couponDomain.Coupon{
			Name: "5,000 off", Code: "AMOUNT5000",
			DiscountType: couponDomain.DiscountAmount, DiscountValue: 5000,
		}
		total := ComputeCartTotal(cart, &coupon)

		// Tanpa diskon per-item, kupon memotong 5000 dari agregat sekali
		assert.Equal(t, 30000, total.TotalBeforeDiscount)
		assert.Equal(t, 25000, total.TotalAfterDiscount)
	})

	t.Run("Item discounts applied before coupon", func(t *testing.T) {
		// qty 12 membuka bulk bonus; kupon dihitung dari total setelah diskon item
		cart := []CartItem{{Product: plainProduct("p1", 10000), Quantity: 12}}
		coupon := couponDomain.Coupon{
			Name: "10% off", Code: "PERCENT10",
			DiscountType: couponDomain.DiscountPercentage, DiscountValue: 10,
		}
		total := ComputeCartTotal(cart, &coupon)

		assert.Equal(t, 120000, total.TotalBeforeDiscount)
		// item: round(120000*0.95) = 114000; lalu kupon: round(114000*0.9)
		assert.Equal(t, 102600, total.TotalAfterDiscount)
	})
}

func TestRemainingStock(t *testing.T) {
	product := catalogDomain.Product{ID: "p1", Name: "Product 1", Price: 10000, Stock: 20}

	t.Run("Subtracts cart quantity", func(t *testing.T) {
		cart := []CartItem{{Product: product, Quantity: 5}}
		assert.Equal(t, 15, RemainingStock(product, cart))
	})

	t.Run("Full stock when not in cart", func(t *testing.T) {
		assert.Equal(t, 20, RemainingStock(product, nil))
	})
}

func TestCartMutations(t *testing.T) {
	p1 := plainProduct("p1", 10000)
	p2 := plainProduct("p2", 20000)

	t.Run("AddItem appends new line with quantity one", func(t *testing.T) {
		cart := AddItem(nil, p1)
		assert.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("AddItem increments existing line", func(t *testing.T) {
		cart := []CartItem{{Product: p1, Quantity: 2}}
		next := AddItem(cart, p1)
		assert.Equal(t, 3, next[0].Quantity)
		// Input tidak boleh termutasi
		assert.Equal(t, 2, cart[0].Quantity)
	})

	t.Run("RemoveItem filters matching line", func(t *testing.T) {
		cart := []CartItem{{Product: p1, Quantity: 1}, {Product: p2, Quantity: 2}}
		next := RemoveItem(cart, "p1")
		assert.Len(t, next, 1)
		assert.Equal(t, "p2", next[0].Product.ID)
	})

	t.Run("RemoveItem is idempotent on absent ID", func(t *testing.T) {
		cart := []CartItem{{Product: p1, Quantity: 1}}
		next := RemoveItem(cart, "nope")
		assert.Equal(t, cart, next)
	})

	t.Run("SetQuantity replaces only the matching line", func(t *testing.T) {
		cart := []CartItem{{Product: p1, Quantity: 1}, {Product: p2, Quantity: 2}}
		next := SetQuantity(cart, "p1", 7)
		assert.Equal(t, 7, next[0].Quantity)
		assert.Equal(t, 2, next[1].Quantity)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("SetQuantity zero or below removes the line", func(t *testing.T) {
		cart := []CartItem{{Product: p1, Quantity: 3}}
		assert.Empty(t, SetQuantity(cart, "p1", 0))
		assert.Empty(t, SetQuantity(cart, "p1", -2))
	})
}
