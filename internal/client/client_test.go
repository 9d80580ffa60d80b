package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestListShopsDecodesArray(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/shops", r.URL.Path)
		w.Write([]byte(`[{"id":"1","name":"Electronics Hub","productCount":45}]`))
	})

	shops, err := c.ListShops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "1", shops[0].ID)
	assert.Equal(t, 45, shops[0].ProductCount)
}

func TestCreateProductSendsBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "s1", body["shopId"])
		assert.Equal(t, 0.0, body["stockLevel"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1","shopId":"s1","name":"Lamp","price":12.5,"stockLevel":0}`))
	})

	product, err := c.CreateProduct(context.Background(), ProductInput{ShopID: "s1", Name: "Lamp", Price: 12.5})
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.InDelta(t, 12.5, product.Price, 1e-9)
}

func TestUpdateShopSendsIDAndPartialBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "abc", r.URL.Query().Get("id"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"name": "Renamed"}, body)

		w.Write([]byte(`{"id":"abc","name":"Renamed"}`))
	})

	name := "Renamed"
	shop, err := c.UpdateShop(context.Background(), "abc", ShopPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", shop.Name)
}

func TestDeleteProduct(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("id"))
		w.Write([]byte(`{"message":"Product deleted"}`))
	})

	assert.NoError(t, c.DeleteProduct(context.Background(), "p1"))
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   error
		msg    string
	}{
		{"validation", http.StatusBadRequest, `{"error":"Validation failed"}`, ErrValidation, "Validation failed"},
		{"not found", http.StatusNotFound, `{"error":"Shop not found"}`, ErrNotFound, "Shop not found"},
		{"server error", http.StatusInternalServerError, `{"error":"Failed to fetch shops"}`, ErrNetwork, "Failed to fetch shops"},
		{"no body", http.StatusBadGateway, ``, ErrNetwork, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := c.DeleteShop(context.Background(), "x")
			require.ErrorIs(t, err, tt.kind)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.msg, apiErr.Message)
		})
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := New(srv.URL)
	srv.Close()

	_, err := c.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestMalformedBodyIsNetworkError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := c.ListShops(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestCanceledContext(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListShops(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrNetwork)
}
