// cmd/dashboard/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/javajoker/shop-admin/internal/client"
	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/listing"
	"github.com/javajoker/shop-admin/internal/logging"
	"github.com/javajoker/shop-admin/internal/models"
	"github.com/javajoker/shop-admin/internal/store"
)

const usage = `Usage: dashboard [flags] [metrics|products|shops]

Prints dashboard metrics (default), or one page of the product or shop list.

Flags:
`

type options struct {
	apiURL   string
	search   string
	shop     string
	page     int
	perPage  int
	minPrice float64
	minStock int
	view     string

	minPriceSet bool
	minStockSet bool
}

func parseFlags(cfg *config.Config, args []string) (*options, error) {
	fs := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVarP(&opts.apiURL, "api-url", "u", cfg.Dashboard.APIURL, "shop-admin API base URL")
	fs.StringVarP(&opts.search, "search", "q", "", "case-insensitive search query")
	fs.StringVarP(&opts.shop, "shop", "s", models.AllShops, "shop id to filter products by")
	fs.IntVarP(&opts.page, "page", "p", 1, "page number")
	fs.IntVarP(&opts.perPage, "per-page", "n", cfg.Dashboard.ItemsPerPage, "items per page")
	fs.Float64Var(&opts.minPrice, "min-price", 0, "minimum product price")
	fs.IntVar(&opts.minStock, "min-stock", 0, "minimum product stock level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.minPriceSet = fs.Changed("min-price")
	opts.minStockSet = fs.Changed("min-stock")

	opts.view = "metrics"
	switch fs.NArg() {
	case 0:
	case 1:
		opts.view = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one view, got %d", fs.NArg())
	}

	switch opts.view {
	case "metrics", "products", "shops":
	default:
		return nil, fmt.Errorf("unknown view %q", opts.view)
	}
	return opts, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(2)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure logging: %v\n", err)
		os.Exit(2)
	}
	logrus.SetOutput(os.Stderr)

	opts, err := parseFlags(cfg, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hc := &http.Client{Timeout: time.Duration(cfg.Dashboard.Timeout) * time.Second}
	s := store.New(client.New(opts.apiURL, client.WithHTTPClient(hc)), store.WithItemsPerPage(opts.perPage))

	if err := run(ctx, s, opts, os.Stdout); err != nil {
		logrus.WithError(err).Error(s.State().Error)
		os.Exit(1)
	}
}

func run(ctx context.Context, s *store.Store, opts *options, out io.Writer) error {
	if err := s.FetchShops(ctx); err != nil {
		return err
	}
	if opts.view != "shops" {
		if err := s.FetchProducts(ctx); err != nil {
			return err
		}
	}

	s.SetSearchQuery(opts.search)
	s.SetSelectedShop(opts.shop)
	s.SetCurrentPage(opts.page)

	switch opts.view {
	case "products":
		var bounds store.ProductBounds
		if opts.minPriceSet {
			bounds.MinPrice = &opts.minPrice
		}
		if opts.minStockSet {
			bounds.MinStock = &opts.minStock
		}
		printProducts(out, s.FilteredProducts(bounds), s.State().Shops)
	case "shops":
		printShops(out, s.FilteredShops())
	default:
		printMetrics(out, s)
	}
	return nil
}

func printProducts(out io.Writer, page listing.Page[models.Product], shops []models.Shop) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSHOP\tPRICE\tSTOCK")
	for _, p := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d\n", p.Name, listing.ShopName(shops, p.ShopID), p.Price, p.StockLevel)
	}
	w.Flush()
	printFooter(out, page.Start, page.End, page.Total, page.Page, page.TotalPages)
}

func printShops(out io.Writer, page listing.Page[models.Shop]) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRODUCTS\tDESCRIPTION")
	for _, sh := range page.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\n", sh.Name, sh.ProductCount, sh.Description)
	}
	w.Flush()
	printFooter(out, page.Start, page.End, page.Total, page.Page, page.TotalPages)
}

func printFooter(out io.Writer, start, end, total, page, pages int) {
	fmt.Fprintf(out, "\nShowing %d to %d of %d (page %d of %d)\n", start, end, total, page, pages)
}

func printMetrics(out io.Writer, s *store.Store) {
	m := s.Metrics()

	fmt.Fprintf(out, "Total shops:     %d\n", m.TotalShops)
	fmt.Fprintf(out, "Total products:  %d\n", m.TotalProducts)
	fmt.Fprintf(out, "Inventory value: $%.2f\n", m.TotalValue)
	fmt.Fprintf(out, "Total stock:     %d\n", m.TotalStock)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nSTOCK STATUS\tPRODUCTS")
	for _, st := range m.StockStatus {
		fmt.Fprintf(w, "%s\t%d\n", st.Name, st.Value)
	}
	fmt.Fprintln(w, "\nTOP SHOPS\tSTOCK")
	for _, sh := range m.TopShops {
		fmt.Fprintf(w, "%s\t%d\n", sh.Name, sh.Stock)
	}
	w.Flush()
}
