package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/shop-admin/internal/models"
)

func product(id, shopID, name, desc string, price float64, stock int) models.Product {
	return models.Product{
		BaseModel:   models.BaseModel{ID: id},
		ShopID:      shopID,
		Name:        name,
		Description: desc,
		Price:       price,
		StockLevel:  stock,
	}
}

func catalog() []models.Product {
	return []models.Product{
		product("1", "s1", "Wireless Earbuds", "noise cancellation", 99.99, 4),
		product("2", "s4", "Smart Watch", "health tracking", 299.99, 35),
		product("3", "s2", "Designer Handbag", "Luxury designer handbag", 299.99, 15),
		product("4", "s5", "Summer Dress", "Lightweight summer dress", 79.99, 25),
		product("5", "s3", "Coffee Maker", "Programmable coffee maker", 149.99, 0),
	}
}

func ptr[T any](v T) *T { return &v }

func TestFilterProductsEmptyFilterKeepsAll(t *testing.T) {
	products := catalog()

	assert.Len(t, FilterProducts(products, ProductFilter{}), len(products))
	assert.Len(t, FilterProducts(products, ProductFilter{ShopID: models.AllShops}), len(products))
}

func TestFilterProductsPredicates(t *testing.T) {
	products := catalog()

	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{"name match is case-insensitive", ProductFilter{Query: "WATCH"}, []string{"2"}},
		{"description match", ProductFilter{Query: "luxury"}, []string{"3"}},
		{"shop", ProductFilter{ShopID: "s2"}, []string{"3"}},
		{"min price", ProductFilter{MinPrice: ptr(200.0)}, []string{"2", "3"}},
		{"min stock", ProductFilter{MinStock: ptr(20)}, []string{"2", "4"}},
		{"combined", ProductFilter{Query: "d", MinPrice: ptr(100.0), ShopID: models.AllShops}, []string{"3"}},
		{"no match", ProductFilter{Query: "bicycle"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(products, tt.filter)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.LessOrEqual(t, len(got), len(products))
		})
	}
}

func TestFilterShopsByNameOnly(t *testing.T) {
	shops := []models.Shop{
		{BaseModel: models.BaseModel{ID: "a"}, Name: "Electronics Hub", Description: "gadgets"},
		{BaseModel: models.BaseModel{ID: "b"}, Name: "Fashion Square"},
	}

	assert.Len(t, FilterShops(shops, ""), 2)
	assert.Len(t, FilterShops(shops, "hub"), 1)
	assert.Empty(t, FilterShops(shops, "gadgets"))
}

func TestShopNameFallback(t *testing.T) {
	shops := []models.Shop{{BaseModel: models.BaseModel{ID: "a"}, Name: "Electronics Hub"}}

	assert.Equal(t, "Electronics Hub", ShopName(shops, "a"))
	assert.Equal(t, UnknownShop, ShopName(shops, "gone"))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(3, 0))
}

func TestPaginateClampsPastTheEnd(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := Paginate(items, 9, 3)
	require.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, []int{7}, page.Items)
	assert.Equal(t, 7, page.Start)
	assert.Equal(t, 7, page.End)

	page = Paginate(items, 0, 3)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, []int{1, 2, 3}, page.Items)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]string{}, 4, 10)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Start)
	assert.Zero(t, page.End)
}
