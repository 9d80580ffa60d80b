// internal/client/shops.go
package client

import (
	"context"
	"net/http"

	"github.com/javajoker/shop-admin/internal/models"
)

const shopsPath = "/api/shops"

// ShopInput is a Shop without identity or productCount.
type ShopInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// ShopPatch carries only the fields to change.
type ShopPatch struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Logo         *string `json:"logo,omitempty"`
	ProductCount *int    `json:"productCount,omitempty"`
}

func (c *Client) ListShops(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := c.do(ctx, http.MethodGet, shopsPath, nil, nil, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func (c *Client) CreateShop(ctx context.Context, in ShopInput) (models.Shop, error) {
	var shop models.Shop
	err := c.do(ctx, http.MethodPost, shopsPath, nil, in, &shop)
	return shop, err
}

func (c *Client) UpdateShop(ctx context.Context, id string, patch ShopPatch) (models.Shop, error) {
	var shop models.Shop
	err := c.do(ctx, http.MethodPut, shopsPath, idQuery(id), patch, &shop)
	return shop, err
}

func (c *Client) DeleteShop(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, shopsPath, idQuery(id), nil, nil)
}
