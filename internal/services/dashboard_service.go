// internal/services/dashboard_service.go
package services

import (
	"context"

	"github.com/javajoker/shop-admin/internal/dashboard"
)

type DashboardService struct {
	shops    *ShopService
	products *ProductService
}

func NewDashboardService(shops *ShopService, products *ProductService) *DashboardService {
	return &DashboardService{
		shops:    shops,
		products: products,
	}
}

// GetMetrics loads both full collections and derives the dashboard from them.
func (s *DashboardService) GetMetrics(ctx context.Context) (*dashboard.Metrics, error) {
	shops, err := s.shops.ListShops(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	metrics := dashboard.Compute(products, shops)
	return &metrics, nil
}
