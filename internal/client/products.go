// internal/client/products.go
package client

import (
	"context"
	"net/http"

	"github.com/javajoker/shop-admin/internal/models"
)

const productsPath = "/api/products"

// ProductInput is a Product without identity.
type ProductInput struct {
	ShopID      string  `json:"shopId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	StockLevel  int     `json:"stockLevel"`
	Image       string  `json:"image"`
}

// ProductPatch carries only the fields to change.
type ProductPatch struct {
	ShopID      *string  `json:"shopId,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	StockLevel  *int     `json:"stockLevel,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, productsPath, nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPost, productsPath, nil, in, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPut, productsPath, idQuery(id), patch, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, productsPath, idQuery(id), nil, nil)
}
