package domain

// Tier discount: beli >= Quantity, dapat potongan Rate.
type Discount struct {
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Rate     float64 `json:"rate" binding:"min=0,max=1"`
}

type Product struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Price         int        `json:"price"` // satuan mata uang utuh, tanpa desimal
	Stock         int        `json:"stock"`
	Discounts     []Discount `json:"discounts"`
	IsRecommended bool       `json:"is_recommended,omitempty"`
}

// Batas stok per produk (validasi form admin)
const MaxStock = 9999

type CreateProductRequest struct {
	Name          string     `json:"name" binding:"required"`
	Description   string     `json:"description"`
	Price         int        `json:"price" binding:"min=0"`
	Stock         int        `json:"stock" binding:"min=0"`
	Discounts     []Discount `json:"discounts" binding:"dive"`
	IsRecommended bool       `json:"is_recommended"`
}

// Field pointer: nil berarti tidak diubah (partial update).
type UpdateProductRequest struct {
	Name          *string     `json:"name"`
	Description   *string     `json:"description"`
	Price         *int        `json:"price"`
	Stock         *int        `json:"stock"`
	Discounts     *[]Discount `json:"discounts"`
	IsRecommended *bool       `json:"is_recommended"`
}

// ProductListing adalah bentuk produk untuk tampilan katalog: produk plus
// sisa stok (stok dikurangi isi cart) dan harga yang sudah diformat.
type ProductListing struct {
	Product
	RemainingStock int    `json:"remaining_stock"`
	DisplayPrice   string `json:"display_price"`
}

// DefaultProducts adalah katalog awal saat belum ada data tersimpan.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			Name:        "Product 1",
			Description: "Top quality premium product.",
			Price:       10000,
			Stock:       20,
			Discounts: []Discount{
				{Quantity: 10, Rate: 0.1},
				{Quantity: 20, Rate: 0.2},
			},
		},
		{
			ID:            "p2",
			Name:          "Product 2",
			Description:   "Practical product with versatile features.",
			Price:         20000,
			Stock:         20,
			Discounts:     []Discount{{Quantity: 10, Rate: 0.15}},
			IsRecommended: true,
		},
		{
			ID:          "p3",
			Name:        "Product 3",
			Description: "High capacity, high performance product.",
			Price:       30000,
			Stock:       20,
			Discounts: []Discount{
				{Quantity: 10, Rate: 0.2},
				{Quantity: 30, Rate: 0.25},
			},
		},
	}
}
