// internal/store/shops.go
package store

import (
	"context"
	"slices"

	"github.com/javajoker/shop-admin/internal/client"
	"github.com/javajoker/shop-admin/internal/models"
)

// FetchShops replaces the shop collection. A fetch overtaken by a newer
// FetchShops is discarded and returns nil, even when its own request failed;
// the newer fetch owns the collection and the error state.
func (s *Store) FetchShops(ctx context.Context) error {
	s.mu.Lock()
	s.shopsSeq++
	seq := s.shopsSeq
	s.mu.Unlock()

	s.begin()
	shops, err := s.api.ListShops(ctx)
	if shops == nil {
		shops = []models.Shop{}
	}

	stale := false
	s.finish(func(st *State) {
		switch {
		case seq != s.shopsSeq:
			stale = true
		case err != nil:
			st.Error = "Failed to fetch shops"
		default:
			st.Shops = shops
		}
	})

	if stale {
		entry := s.log.WithField("op", "fetch_shops")
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Debug("dropping superseded response")
		return nil
	}
	if err != nil {
		s.log.WithError(err).WithField("op", "fetch_shops").Warn("Failed to fetch shops")
		return err
	}
	return nil
}

func (s *Store) AddShop(ctx context.Context, in client.ShopInput) error {
	s.begin()
	shop, err := s.api.CreateShop(ctx, in)
	if err != nil {
		return s.fail("add_shop", "Failed to add shop", err)
	}
	s.finish(func(st *State) {
		st.Shops = append(slices.Clip(st.Shops), shop)
		st.CurrentPage = 1
	})
	return nil
}

func (s *Store) UpdateShop(ctx context.Context, id string, patch client.ShopPatch) error {
	s.begin()
	shop, err := s.api.UpdateShop(ctx, id, patch)
	if err != nil {
		return s.fail("update_shop", "Failed to update shop", err)
	}
	s.finish(func(st *State) {
		next := slices.Clone(st.Shops)
		for i := range next {
			if next[i].ID == id {
				next[i] = shop
			}
		}
		st.Shops = next
	})
	return nil
}

// DeleteShop leaves the shop's products in place.
func (s *Store) DeleteShop(ctx context.Context, id string) error {
	s.begin()
	if err := s.api.DeleteShop(ctx, id); err != nil {
		return s.fail("delete_shop", "Failed to delete shop", err)
	}
	s.finish(func(st *State) {
		st.Shops = slices.DeleteFunc(slices.Clone(st.Shops), func(sh models.Shop) bool {
			return sh.ID == id
		})
		if st.SelectedShop == id {
			st.SelectedShop = models.AllShops
		}
		st.CurrentPage = 1
	})
	return nil
}
