// internal/store/views.go
package store

import (
	"github.com/javajoker/shop-admin/internal/dashboard"
	"github.com/javajoker/shop-admin/internal/listing"
	"github.com/javajoker/shop-admin/internal/models"
)

// ProductBounds are the optional product list bounds not held in State.
type ProductBounds struct {
	MinPrice *float64
	MinStock *int
}

// FilteredProducts applies the search query, selected shop and bounds, then
// returns the current page.
func (s *Store) FilteredProducts(bounds ProductBounds) listing.Page[models.Product] {
	st := s.State()
	filtered := listing.FilterProducts(st.Products, listing.ProductFilter{
		Query:    st.SearchQuery,
		ShopID:   st.SelectedShop,
		MinPrice: bounds.MinPrice,
		MinStock: bounds.MinStock,
	})
	return listing.Paginate(filtered, st.CurrentPage, st.ItemsPerPage)
}

func (s *Store) FilteredShops() listing.Page[models.Shop] {
	st := s.State()
	return listing.Paginate(listing.FilterShops(st.Shops, st.SearchQuery), st.CurrentPage, st.ItemsPerPage)
}

// Metrics is computed over the full collections, not the current page.
func (s *Store) Metrics() dashboard.Metrics {
	st := s.State()
	return dashboard.Compute(st.Products, st.Shops)
}
