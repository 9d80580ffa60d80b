// internal/database/seed.go
package database

import "github.com/javajoker/shop-admin/internal/models"

var seedShops = []models.Shop{
	{Name: "Electronics Hub", Description: "Premium electronics and gadgets", Logo: "/shop-1.png", ProductCount: 45},
	{Name: "Fashion Square", Description: "Trendy fashion and accessories", Logo: "/shop-2.png", ProductCount: 32},
	{Name: "Home Essentials", Description: "Everything for your home", Logo: "/shop-3.png", ProductCount: 28},
	{Name: "Sports Center", Description: "Sports equipment and gear", Logo: "/shop-4.png", ProductCount: 37},
	{Name: "Beauty Boulevard", Description: "Beauty and skincare products", Logo: "/shop-5.png", ProductCount: 23},
}

// shop indexes into seedShops.
var seedProducts = []struct {
	shop    int
	product models.Product
}{
	{0, models.Product{Name: "Wireless Earbuds", Price: 99.99, StockLevel: 4, Description: "High-quality wireless earbuds with noise cancellation", Image: "/product-1.png"}},
	{3, models.Product{Name: "Smart Watch", Price: 299.99, StockLevel: 35, Description: "Feature-rich smartwatch with health tracking", Image: "/product-2.png"}},
	{1, models.Product{Name: "Designer Handbag", Price: 299.99, StockLevel: 15, Description: "Luxury designer handbag", Image: "/product-3.png"}},
	{4, models.Product{Name: "Summer Dress", Price: 79.99, StockLevel: 25, Description: "Lightweight summer dress", Image: "/product-4.png"}},
	{2, models.Product{Name: "Coffee Maker", Price: 149.99, StockLevel: 20, Description: "Programmable coffee maker", Image: "/product-5.png"}},
}
