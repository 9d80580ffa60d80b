// internal/listing/listing.go
package listing

import (
	"strings"

	"github.com/javajoker/shop-admin/internal/models"
)

// UnknownShop is displayed for products whose shop no longer exists.
const UnknownShop = "Unknown Shop"

// ProductFilter holds the product list predicates. Nil bounds are not applied.
type ProductFilter struct {
	Query    string
	ShopID   string
	MinPrice *float64
	MinStock *int
}

func (f ProductFilter) matches(p models.Product, query string) bool {
	if query != "" &&
		!strings.Contains(strings.ToLower(p.Name), query) &&
		!strings.Contains(strings.ToLower(p.Description), query) {
		return false
	}
	if f.ShopID != "" && f.ShopID != models.AllShops && p.ShopID != f.ShopID {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MinStock != nil && p.StockLevel < *f.MinStock {
		return false
	}
	return true
}

// FilterProducts returns the products matching f, preserving order.
func FilterProducts(products []models.Product, f ProductFilter) []models.Product {
	query := strings.ToLower(f.Query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// FilterShops keeps shops whose name contains query, case-insensitively.
func FilterShops(shops []models.Shop, query string) []models.Shop {
	query = strings.ToLower(query)
	out := make([]models.Shop, 0, len(shops))
	for _, s := range shops {
		if strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out
}

// ShopName resolves a product's shop name for display.
func ShopName(shops []models.Shop, id string) string {
	for _, s := range shops {
		if s.ID == id {
			return s.Name
		}
	}
	return UnknownShop
}
