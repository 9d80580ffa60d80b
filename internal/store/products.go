// internal/store/products.go
package store

import (
	"context"
	"slices"

	"github.com/javajoker/shop-admin/internal/client"
	"github.com/javajoker/shop-admin/internal/models"
)

// FetchProducts replaces the product collection. A fetch overtaken by a
// newer FetchProducts is discarded and returns nil, even when its own request
// failed; the newer fetch owns the collection and the error state.
func (s *Store) FetchProducts(ctx context.Context) error {
	s.mu.Lock()
	s.productsSeq++
	seq := s.productsSeq
	s.mu.Unlock()

	s.begin()
	products, err := s.api.ListProducts(ctx)
	if products == nil {
		products = []models.Product{}
	}

	stale := false
	s.finish(func(st *State) {
		switch {
		case seq != s.productsSeq:
			stale = true
		case err != nil:
			st.Error = "Failed to fetch products"
		default:
			st.Products = products
		}
	})

	if stale {
		entry := s.log.WithField("op", "fetch_products")
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Debug("dropping superseded response")
		return nil
	}
	if err != nil {
		s.log.WithError(err).WithField("op", "fetch_products").Warn("Failed to fetch products")
		return err
	}
	return nil
}

func (s *Store) AddProduct(ctx context.Context, in client.ProductInput) error {
	s.begin()
	product, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		return s.fail("add_product", "Failed to add product", err)
	}
	s.finish(func(st *State) {
		st.Products = append(slices.Clip(st.Products), product)
		st.CurrentPage = 1
	})
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch client.ProductPatch) error {
	s.begin()
	product, err := s.api.UpdateProduct(ctx, id, patch)
	if err != nil {
		return s.fail("update_product", "Failed to update product", err)
	}
	s.finish(func(st *State) {
		next := slices.Clone(st.Products)
		for i := range next {
			if next[i].ID == id {
				next[i] = product
			}
		}
		st.Products = next
	})
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.begin()
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return s.fail("delete_product", "Failed to delete product", err)
	}
	s.finish(func(st *State) {
		st.Products = slices.DeleteFunc(slices.Clone(st.Products), func(p models.Product) bool {
			return p.ID == id
		})
		st.CurrentPage = 1
	})
	return nil
}
