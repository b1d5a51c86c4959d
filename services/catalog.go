package services

import (
	"strings"

	"furnishop/models"
)

// AllCategories is the sentinel facet value meaning "no category filter".
const AllCategories = "All"

// FilterProducts applies the shop filter: category equality (the "All"
// sentinel or an empty selection passes everything) and a case-insensitive
// substring match of term against name or description. Pure function over
// its inputs.
func FilterProducts(products []models.Product, category, term string) []models.Product {
	term = strings.ToLower(term)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// CategoryFacet derives the deduplicated category list from a product set:
// insertion order of first occurrence, with a leading "All" sentinel.
func CategoryFacet(products []models.Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
