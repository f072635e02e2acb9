package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer untuk pemisah ribuan (10000 -> "10,000")
var pricePrinter = message.NewPrinter(language.English)

// PriceContext menentukan format harga yang ditampilkan. Product dan
// RemainingStock diisi saat memformat harga produk di katalog; keduanya nil
// saat memformat angka total biasa.
type PriceContext struct {
	IsAdmin        bool
	Product        *Product
	RemainingStock *int
}

// FormatPrice memformat harga untuk tampilan. Produk yang sisa stoknya habis
// ditampilkan sebagai SOLD OUT; mode admin memakai format "10,000원",
// mode pembeli "₩10,000".
func FormatPrice(price int, ctx PriceContext) string {
	if ctx.Product != nil && ctx.RemainingStock != nil && *ctx.RemainingStock <= 0 {
		return "SOLD OUT"
	}

	if ctx.IsAdmin {
		return pricePrinter.Sprintf("%d원", price)
	}
	return pricePrinter.Sprintf("₩%d", price)
}

// FormatNumber memformat angka dengan pemisah ribuan, dipakai di pesan
// user-facing (contoh: minimum order kupon).
func FormatNumber(n int) string {
	return pricePrinter.Sprintf("%d", n)
}
