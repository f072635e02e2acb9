package domain

import "strings"

// FilterProducts memfilter produk dengan substring match (case-insensitive)
// pada nama ATAU deskripsi. Search term kosong mengembalikan semua produk.
// Produk tanpa deskripsi hanya dicocokkan lewat nama.
func FilterProducts(products []Product, searchTerm string) []Product {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return products
	}

	filtered := []Product{}
	for _, p := range products {
		nameMatch := strings.Contains(strings.ToLower(p.Name), term)
		descriptionMatch := p.Description != "" &&
			strings.Contains(strings.ToLower(p.Description), term)
		if nameMatch || descriptionMatch {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
