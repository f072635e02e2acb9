package domain

import "math"

type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

// Aturan bisnis kupon
const (
	// Minimum total belanja untuk kupon percentage
	MinOrderAmountForPercentageCoupon = 10000
	// Batas nilai kupon (validasi form admin)
	MaxDiscountAmount     = 100000
	MaxDiscountPercentage = 100
)

type Coupon struct {
	Name          string       `json:"name" binding:"required"`
	Code          string       `json:"code" binding:"required"` // unique key
	DiscountType  DiscountType `json:"discount_type" binding:"required,oneof=amount percentage"`
	DiscountValue int          `json:"discount_value" binding:"min=0"`
}

// ApplyCouponToTotal menerapkan kupon ke total agregat.
// Kupon amount tidak pernah membuat total negatif; kupon percentage dibulatkan
// ke integer terdekat.
func ApplyCouponToTotal(total int, coupon Coupon) int {
	if coupon.DiscountType == DiscountAmount {
		if total-coupon.DiscountValue < 0 {
			return 0
		}
		return total - coupon.DiscountValue
	}
	return int(math.Round(float64(total) * (1 - float64(coupon.DiscountValue)/100)))
}

// IsCouponValid menjawab apakah kupon boleh dipakai pada total tersebut.
// Kupon percentage butuh minimum order; kupon amount selalu valid berapapun
// totalnya (memang asimetris).
func IsCouponValid(total int, coupon Coupon) bool {
	if coupon.DiscountType == DiscountPercentage {
		return total >= MinOrderAmountForPercentageCoupon
	}
	return true
}

// DefaultCoupons adalah kupon awal saat belum ada data tersimpan.
func DefaultCoupons() []Coupon {
	return []Coupon{
		{
			Name:          "5,000 off",
			Code:          "AMOUNT5000",
			DiscountType:  DiscountAmount,
			DiscountValue: 5000,
		},
		{
			Name:          "10% off",
			Code:          "PERCENT10",
			DiscountType:  DiscountPercentage,
			DiscountValue: 10,
		},
	}
}
