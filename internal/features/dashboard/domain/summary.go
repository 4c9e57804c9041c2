package domain

import (
	"sort"
	"time"

	categories "shop-admin/internal/features/categories/domain"
	products "shop-admin/internal/features/products/domain"
)

// RecentLimit is how many recently created categories and products are shown.
const RecentLimit = 5

// Summary is the dashboard overview.
type Summary struct {
	TotalCategories        int `json:"totalCategories"`
	CategoriesWithProducts int `json:"categoriesWithProducts"`
	TotalProducts          int `json:"totalProducts"`
	ActiveProducts         int `json:"activeProducts"`
	TotalVariants          int `json:"totalVariants"`
	TotalStock             int `json:"totalStock"`

	RecentCategories []categories.Category `json:"recentCategories"`
	RecentProducts   []RecentProduct       `json:"recentProducts"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// RecentProduct is a product with its display price.
type RecentProduct struct {
	products.Product
	PriceLabel string `json:"priceLabel"`
}

// Summarize computes the overview from the full category and product lists.
// Neither input is modified.
func Summarize(cats []categories.Category, prods []products.Product, now time.Time) Summary {
	s := Summary{
		TotalCategories:        len(cats),
		CategoriesWithProducts: len(categories.WithProducts(cats)),
		TotalProducts:          len(prods),
		GeneratedAt:            now,
	}

	for _, p := range prods {
		if p.IsActive() {
			s.ActiveProducts++
		}
		s.TotalVariants += variantCount(p)
		s.TotalStock += p.Stock()
	}

	recentCats := categories.Filter(cats, categories.Criteria{Sort: categories.SortByCreatedAt})
	s.RecentCategories = head(recentCats, RecentLimit)

	s.RecentProducts = make([]RecentProduct, 0, RecentLimit)
	for _, p := range head(newestProducts(prods), RecentLimit) {
		s.RecentProducts = append(s.RecentProducts, RecentProduct{
			Product:    p,
			PriceLabel: products.FormatCurrency(p.Price),
		})
	}
	return s
}

// variantCount prefers the backend's counter and falls back to the embedded list.
func variantCount(p products.Product) int {
	if p.VariantCount > 0 {
		return p.VariantCount
	}
	return len(p.Variants)
}

// newestProducts orders a copy by creation time, newest first; unknown times count as the epoch.
func newestProducts(items []products.Product) []products.Product {
	out := make([]products.Product, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i].CreatedAt).After(createdAt(out[j].CreatedAt))
	})
	return out
}

func createdAt(t *time.Time) time.Time {
	if t == nil {
		return time.Unix(0, 0)
	}
	return *t
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
