// internal/dashboard/dashboard.go
package dashboard

import (
	"sort"

	"github.com/javajoker/shop-admin/internal/models"
)

// TopShopsLimit caps the top shops ranking.
const TopShopsLimit = 5

// Stock status bucket names, in display order.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// LowStockThreshold is the highest stock level still counted as low stock.
const LowStockThreshold = 5

type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ShopStock struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type Metrics struct {
	TotalShops    int           `json:"totalShops"`
	TotalProducts int           `json:"totalProducts"`
	TotalValue    float64       `json:"totalValue"`
	TotalStock    int           `json:"totalStock"`
	StockStatus   []StatusCount `json:"stockStatus"`
	TopShops      []ShopStock   `json:"topShops"`
}

// Compute derives every dashboard aggregate from the full collections.
func Compute(products []models.Product, shops []models.Shop) Metrics {
	m := Metrics{
		TotalShops:    len(shops),
		TotalProducts: len(products),
		StockStatus:   StockStatus(products),
		TopShops:      TopShops(products, shops),
	}
	for _, p := range products {
		m.TotalValue += p.InventoryValue()
		m.TotalStock += p.StockLevel
	}
	return m
}

// StockStatus buckets products by stock level. Bucket order is fixed.
func StockStatus(products []models.Product) []StatusCount {
	var in, low, out int
	for _, p := range products {
		switch {
		case p.StockLevel > LowStockThreshold:
			in++
		case p.StockLevel > 0:
			low++
		default:
			out++
		}
	}
	return []StatusCount{
		{Name: StatusInStock, Value: in},
		{Name: StatusLowStock, Value: low},
		{Name: StatusOutOfStock, Value: out},
	}
}

// TopShops ranks shops by the summed stock of their products. Ties keep
// shop order. Products of unknown shops are not counted.
func TopShops(products []models.Product, shops []models.Shop) []ShopStock {
	stockByShop := make(map[string]int, len(shops))
	for _, p := range products {
		stockByShop[p.ShopID] += p.StockLevel
	}

	ranked := make([]ShopStock, 0, len(shops))
	for _, s := range shops {
		ranked = append(ranked, ShopStock{Name: s.Name, Stock: stockByShop[s.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stock > ranked[j].Stock
	})

	if len(ranked) > TopShopsLimit {
		ranked = ranked[:TopShopsLimit]
	}
	return ranked
}
