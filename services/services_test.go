package services

import (
	"sync"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/repository"
)

type memStore struct{ m map[string]string }

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}
func (s *memStore) Put(key, value string) error { s.m[key] = value; return nil }
func (s *memStore) Delete(key string) error     { delete(s.m, key); return nil }

type eventRecorder struct{ events []string }

func (r *eventRecorder) Publish(event string, payload any) {
	r.events = append(r.events, event)
}

// testEngine wires the full register over an in-memory store. The menu
// starts as the seed catalog (idly 30, puttu 45, ...).
type testEngine struct {
	store    *memStore
	events   *eventRecorder
	cartRepo *repository.CartRepository

	Menu     *MenuService
	Cart     *CartService
	Sales    *SalesService
	Checkout *CheckoutService
}

func newTestEngine() *testEngine {
	store := newMemStore()
	events := &eventRecorder{}
	var mu sync.Mutex

	menuRepo := repository.NewMenuRepository(store)
	cartRepo := repository.NewCartRepository(store)
	salesRepo := repository.NewSalesRepository(store)

	cart := NewCartService(&mu, cartRepo, menuRepo, events)
	menu := NewMenuService(&mu, menuRepo, cart, events)
	sales := NewSalesService(&mu, salesRepo, events)
	checkout := NewCheckoutService(&mu, cart, sales)

	return &testEngine{
		store:    store,
		events:   events,
		cartRepo: cartRepo,
		Menu:     menu,
		Cart:     cart,
		Sales:    sales,
		Checkout: checkout,
	}
}
