package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/shop-admin/internal/client"
	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{Dashboard: config.DashboardConfig{APIURL: "http://api", ItemsPerPage: 10}}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(testConfig(), []string{"-q", "lamp", "--min-stock", "0", "products"})
	require.NoError(t, err)

	assert.Equal(t, "products", opts.view)
	assert.Equal(t, "lamp", opts.search)
	assert.Equal(t, "http://api", opts.apiURL)
	assert.Equal(t, 10, opts.perPage)
	assert.True(t, opts.minStockSet)
	assert.False(t, opts.minPriceSet)
}

func TestParseFlagsDefaultsToMetrics(t *testing.T) {
	opts, err := parseFlags(testConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, "metrics", opts.view)
}

func TestParseFlagsRejectsUnknownView(t *testing.T) {
	_, err := parseFlags(testConfig(), []string{"orders"})
	assert.Error(t, err)

	_, err = parseFlags(testConfig(), []string{"shops", "products"})
	assert.Error(t, err)
}

func stubAPI(t *testing.T) *client.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/shops", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"s1","name":"Sports Center","productCount":37}]`))
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"p1","shopId":"s1","name":"Smart Watch","price":299.99,"stockLevel":35},
			{"id":"p2","shopId":"gone","name":"Wireless Earbuds","price":99.99,"stockLevel":4}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func TestRunProducts(t *testing.T) {
	opts, err := parseFlags(testConfig(), []string{"products"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), store.New(stubAPI(t)), opts, &out))

	assert.Contains(t, out.String(), "Smart Watch")
	assert.Contains(t, out.String(), "Unknown Shop")
	assert.Contains(t, out.String(), "Showing 1 to 2 of 2 (page 1 of 1)")
}

func TestRunMetrics(t *testing.T) {
	opts, err := parseFlags(testConfig(), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), store.New(stubAPI(t)), opts, &out))

	assert.Contains(t, out.String(), "Total products:  2")
	assert.Contains(t, out.String(), "Total stock:     39")
	assert.Contains(t, out.String(), "Low Stock")
}

func TestRunReportsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := store.New(client.New(srv.URL))
	opts, err := parseFlags(testConfig(), []string{"shops"})
	require.NoError(t, err)

	err = run(context.Background(), s, opts, &bytes.Buffer{})
	assert.ErrorIs(t, err, client.ErrNetwork)
	assert.Equal(t, "Failed to fetch shops", s.State().Error)
}
