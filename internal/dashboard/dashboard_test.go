package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/shop-admin/internal/models"
)

func shop(id, name string) models.Shop {
	return models.Shop{BaseModel: models.BaseModel{ID: id}, Name: name}
}

func TestComputeTotals(t *testing.T) {
	products := []models.Product{
		{Price: 10, StockLevel: 4},
		{Price: 5, StockLevel: 0},
	}

	m := Compute(products, nil)

	assert.Equal(t, 0, m.TotalShops)
	assert.Equal(t, 2, m.TotalProducts)
	assert.InDelta(t, 40.0, m.TotalValue, 1e-9)
	assert.Equal(t, 4, m.TotalStock)
	assert.Equal(t, []StatusCount{
		{Name: StatusInStock, Value: 0},
		{Name: StatusLowStock, Value: 1},
		{Name: StatusOutOfStock, Value: 1},
	}, m.StockStatus)
	assert.Empty(t, m.TopShops)
}

func TestStockStatusBoundaries(t *testing.T) {
	products := []models.Product{
		{StockLevel: 6}, {StockLevel: 5}, {StockLevel: 1}, {StockLevel: 0},
	}

	status := StockStatus(products)

	require.Len(t, status, 3)
	assert.Equal(t, 1, status[0].Value)
	assert.Equal(t, 2, status[1].Value)
	assert.Equal(t, 1, status[2].Value)
}

func TestTopShopsOrdering(t *testing.T) {
	shops := []models.Shop{shop("A", "A-name"), shop("B", "B-name")}
	products := []models.Product{
		{ShopID: "A", StockLevel: 3},
		{ShopID: "B", StockLevel: 7},
	}

	assert.Equal(t, []ShopStock{{Name: "B-name", Stock: 7}, {Name: "A-name", Stock: 3}}, TopShops(products, shops))
}

func TestTopShopsStableAndCapped(t *testing.T) {
	shops := []models.Shop{
		shop("1", "one"), shop("2", "two"), shop("3", "three"),
		shop("4", "four"), shop("5", "five"), shop("6", "six"), shop("7", "seven"),
	}
	products := []models.Product{
		{ShopID: "3", StockLevel: 10},
		{ShopID: "6", StockLevel: 4},
		{ShopID: "6", StockLevel: 6},
		{ShopID: "ghost", StockLevel: 100},
	}

	top := TopShops(products, shops)

	require.Len(t, top, TopShopsLimit)
	assert.Equal(t, []ShopStock{
		{Name: "three", Stock: 10},
		{Name: "six", Stock: 10},
		{Name: "one", Stock: 0},
		{Name: "two", Stock: 0},
		{Name: "four", Stock: 0},
	}, top)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Stock, top[i].Stock)
	}
}

func TestComputeIsNotCached(t *testing.T) {
	products := []models.Product{{Price: 2, StockLevel: 3}}
	first := Compute(products, nil)

	products[0].StockLevel = 1
	second := Compute(products, nil)

	assert.Equal(t, 3, first.TotalStock)
	assert.Equal(t, 1, second.TotalStock)
}
