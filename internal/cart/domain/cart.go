package domain

import (
	"math"

	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	couponDomain "github.com/ridloal/storefront-demo/internal/coupon/domain"
)

// Aturan bisnis diskon
const (
	// Satu line dengan quantity >= ini membuka bonus diskon untuk SELURUH cart
	BulkPurchaseQuantity           = 10
	BulkPurchaseAdditionalDiscount = 0.05
	// Diskon maksimum setelah semua aturan digabung
	MaxDiscountRate = 0.5
)

// Satu entry per product ID; Product adalah snapshot data produk saat itu.
type CartItem struct {
	Product  catalogDomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

// CartTotal adalah nilai turunan, dihitung ulang setiap query, tidak disimpan.
type CartTotal struct {
	TotalBeforeDiscount int `json:"total_before_discount"`
	TotalAfterDiscount  int `json:"total_after_discount"`
}

// OpResult adalah hasil operasi user-facing. Message ditampilkan apa adanya
// oleh konsumen.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// MaxApplicableDiscount menghitung rate diskon maksimum untuk satu item:
// rate tier tertinggi yang quantity-nya terpenuhi, ditambah bonus bulk
// purchase jika ADA line manapun di cart yang mencapai BulkPurchaseQuantity.
// Hasil selalu di rentang [0, MaxDiscountRate].
func MaxApplicableDiscount(item CartItem, cart []CartItem) float64 {
	baseDiscount := 0.0
	for _, d := range item.Product.Discounts {
		if item.Quantity >= d.Quantity && d.Rate > baseDiscount {
			baseDiscount = d.Rate
		}
	}

	hasBulkPurchase := false
	for _, cartItem := range cart {
		if cartItem.Quantity >= BulkPurchaseQuantity {
			hasBulkPurchase = true
			break
		}
	}

	if hasBulkPurchase {
		return math.Min(baseDiscount+BulkPurchaseAdditionalDiscount, MaxDiscountRate)
	}
	return baseDiscount
}

// ItemTotal menghitung total satu line setelah diskon, dibulatkan ke integer
// terdekat.
func ItemTotal(item CartItem, cart []CartItem) int {
	discount := MaxApplicableDiscount(item, cart)
	return int(math.Round(float64(item.Product.Price) * float64(item.Quantity) * (1 - discount)))
}

// ComputeCartTotal menghitung total cart sebelum dan sesudah diskon.
// Urutan penting: diskon per-item dulu, baru kupon diterapkan SEKALI ke total
// agregat (bukan per line).
func ComputeCartTotal(cart []CartItem, selectedCoupon *couponDomain.Coupon) CartTotal {
	totalBeforeDiscount := 0
	totalAfterDiscount := 0

	for _, item := range cart {
		totalBeforeDiscount += item.Product.Price * item.Quantity
		totalAfterDiscount += ItemTotal(item, cart)
	}

	if selectedCoupon != nil {
		totalAfterDiscount = couponDomain.ApplyCouponToTotal(totalAfterDiscount, *selectedCoupon)
	}

	return CartTotal{
		TotalBeforeDiscount: totalBeforeDiscount,
		TotalAfterDiscount:  totalAfterDiscount,
	}
}

// RemainingStock menghitung stok yang masih bisa dijual: stok produk dikurangi
// quantity produk itu di cart. Nilai negatif berarti bug di pemanggil (engine
// tidak menormalisasi).
func RemainingStock(product catalogDomain.Product, cart []CartItem) int {
	for _, item := range cart {
		if item.Product.ID == product.ID {
			return product.Stock - item.Quantity
		}
	}
	return product.Stock
}

// AddItem menambahkan produk ke cart (pure, mengembalikan slice baru).
// Jika sudah ada, quantity naik 1; pemeriksaan stok adalah tanggung jawab
// pemanggil.
func AddItem(cart []CartItem, product catalogDomain.Product) []CartItem {
	for i, item := range cart {
		if item.Product.ID == product.ID {
			next := cloneCart(cart)
			next[i].Quantity = item.Quantity + 1
			return next
		}
	}
	next := cloneCart(cart)
	return append(next, CartItem{Product: product, Quantity: 1})
}

// RemoveItem menghapus line produk dari cart (pure). Idempotent: productID
// yang tidak ada menghasilkan cart yang sama isinya.
func RemoveItem(cart []CartItem, productID string) []CartItem {
	next := []CartItem{}
	for _, item := range cart {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// SetQuantity mengganti quantity satu line (pure). Quantity <= 0 sama dengan
// remove; line lain tidak tersentuh.
func SetQuantity(cart []CartItem, productID string, quantity int) []CartItem {
	if quantity <= 0 {
		return RemoveItem(cart, productID)
	}

	next := cloneCart(cart)
	for i, item := range next {
		if item.Product.ID == productID {
			next[i].Quantity = quantity
		}
	}
	return next
}

func cloneCart(cart []CartItem) []CartItem {
	next := make([]CartItem, len(cart))
	copy(next, cart)
	return next
}
