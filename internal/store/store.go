// internal/store/store.go
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shop-admin/internal/client"
	"github.com/javajoker/shop-admin/internal/models"
)

// DefaultItemsPerPage is the page size of a Store built without WithItemsPerPage.
const DefaultItemsPerPage = 10

// API is the remote access surface the store drives. *client.Client satisfies it.
type API interface {
	ListShops(ctx context.Context) ([]models.Shop, error)
	CreateShop(ctx context.Context, in client.ShopInput) (models.Shop, error)
	UpdateShop(ctx context.Context, id string, patch client.ShopPatch) (models.Shop, error)
	DeleteShop(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, in client.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch client.ProductPatch) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// State is a point-in-time snapshot. Callers own the slices they receive.
type State struct {
	Products     []models.Product
	Shops        []models.Shop
	SearchQuery  string
	SelectedShop string
	CurrentPage  int
	ItemsPerPage int
	Loading      bool
	Error        string
}

func (s State) clone() State {
	s.Products = slices.Clone(s.Products)
	s.Shops = slices.Clone(s.Shops)
	return s
}

// Option configures a Store in New.
type Option func(*Store)

// WithItemsPerPage sets the initial page size. Non-positive values keep
// DefaultItemsPerPage.
func WithItemsPerPage(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.state.ItemsPerPage = n
		}
	}
}

// WithLogger replaces the default logger, the std logrus logger with
// component=store.
func WithLogger(entry *logrus.Entry) Option {
	return func(s *Store) {
		s.log = entry
	}
}

// Store holds the fetched collections together with the list view state.
// It is safe for concurrent use.
type Store struct {
	api API
	log *logrus.Entry

	mu       sync.Mutex
	state    State
	inflight int

	shopsSeq    uint64
	productsSeq uint64

	listeners    map[int]func(State)
	nextListener int
	version      uint64
	notifying    bool
}

// New builds a Store over api. It starts with empty collections, selected
// shop "all", page 1, DefaultItemsPerPage, no error and not loading.
func New(api API, opts ...Option) *Store {
	s := &Store{
		api: api,
		log: logrus.WithField("component", "store"),
		state: State{
			Products:     []models.Product{},
			Shops:        []models.Shop{},
			SelectedShop: models.AllShops,
			CurrentPage:  1,
			ItemsPerPage: DefaultItemsPerPage,
		},
		listeners: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive a snapshot after changes. Listeners are
// called one at a time and the last snapshot delivered matches State().
// The returned func removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// update applies fn under the lock, then delivers the state to listeners.
// One goroutine delivers at a time and always sends the latest state, so
// listeners never observe an older snapshot after a newer one. Changes made
// while a delivery is running, including by a listener, are picked up by that
// delivery; under contention intermediate snapshots may be coalesced.
func (s *Store) update(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.Loading = s.inflight > 0
	s.version++
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true

	for {
		version := s.version
		snapshot := s.state
		listeners := make([]func(State), 0, len(s.listeners))
		for _, l := range s.listeners {
			listeners = append(listeners, l)
		}
		s.mu.Unlock()

		for _, l := range listeners {
			l(snapshot.clone())
		}

		s.mu.Lock()
		if s.version == version {
			s.notifying = false
			s.mu.Unlock()
			return
		}
	}
}

// begin marks a call outstanding and clears the previous error.
func (s *Store) begin() {
	s.update(func(st *State) {
		s.inflight++
		st.Error = ""
	})
}

// finish releases the call and applies fn, if any, in the same step.
func (s *Store) finish(fn func(st *State)) {
	s.update(func(st *State) {
		s.inflight--
		if fn != nil {
			fn(st)
		}
	})
}

func (s *Store) fail(op, message string, err error) error {
	s.log.WithError(err).WithField("op", op).Warn(message)
	s.finish(func(st *State) {
		st.Error = message
	})
	return err
}

func (s *Store) SetSearchQuery(query string) {
	s.update(func(st *State) {
		st.SearchQuery = query
		st.CurrentPage = 1
	})
}

func (s *Store) SetSelectedShop(shopID string) {
	s.update(func(st *State) {
		st.SelectedShop = shopID
		st.CurrentPage = 1
	})
}

func (s *Store) SetCurrentPage(page int) {
	if page < 1 {
		page = 1
	}
	s.update(func(st *State) {
		st.CurrentPage = page
	})
}

// SetItemsPerPage ignores non-positive sizes.
func (s *Store) SetItemsPerPage(n int) {
	if n < 1 {
		return
	}
	s.update(func(st *State) {
		st.ItemsPerPage = n
		st.CurrentPage = 1
	})
}

func (s *Store) ClearError() {
	s.update(func(st *State) {
		st.Error = ""
		st.CurrentPage = 1
	})
}
