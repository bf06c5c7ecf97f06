package services

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/repository"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/utils"
)

// CartService keeps the draft order: a mapping from menu item id to a
// positive quantity. Line prices are resolved from the live catalog on every
// view, so an unpaid cart tracks menu edits; only checkout snapshots prices.
type CartService struct {
	mu       *sync.Mutex
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Events   EventPublisher
}

// The mutex is shared by all register services: the POS assumes a single
// active session, so one lock serializing every operation is enough.
func NewCartService(mu *sync.Mutex, repo *repository.CartRepository, menuRepo *repository.MenuRepository, events EventPublisher) *CartService {
	return &CartService{mu: mu, Repo: repo, MenuRepo: menuRepo, Events: events}
}

// Add puts one more of the item on the bill, creating the entry at quantity
// one. Unknown ids are ignored; the current view is returned either way.
func (s *CartService) Add(itemID string) (*entity.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu := s.MenuRepo.Load()
	if findItem(menu, itemID) == nil {
		return buildCartView(s.Repo.Load(), menu), nil
	}

	cart := s.Repo.Load()
	cart[itemID]++
	if err := s.Repo.Save(cart); err != nil {
		return nil, err
	}
	view := buildCartView(cart, menu)
	s.Events.Publish(EventCartChanged, view)
	return view, nil
}

// Adjust adds delta (usually ±1) to an existing entry. A result of zero or
// below removes the entry; quantities below one are never stored. Missing
// entries are ignored.
func (s *CartService) Adjust(itemID string, delta int) (*entity.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.Repo.Load()
	qty, ok := cart[itemID]
	if !ok {
		return buildCartView(cart, s.MenuRepo.Load()), nil
	}

	qty += delta
	if qty <= 0 {
		delete(cart, itemID)
	} else {
		cart[itemID] = qty
	}
	if err := s.Repo.Save(cart); err != nil {
		return nil, err
	}
	view := buildCartView(cart, s.MenuRepo.Load())
	s.Events.Publish(EventCartChanged, view)
	return view, nil
}

// Clear empties the bill.
func (s *CartService) Clear() (*entity.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *CartService) clearLocked() (*entity.CartView, error) {
	if err := s.Repo.Clear(); err != nil {
		return nil, err
	}
	view := buildCartView(map[string]int{}, s.MenuRepo.Load())
	s.Events.Publish(EventCartChanged, view)
	return view, nil
}

// View recomputes lines and subtotal from the stored cart and the live
// catalog. Nothing is cached.
func (s *CartService) View() *entity.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *CartService) viewLocked() *entity.CartView {
	return buildCartView(s.Repo.Load(), s.MenuRepo.Load())
}

// removeItemLocked drops the entry for a deleted menu item. Called by the
// menu service with the shared lock already held, so after a catalog delete
// returns the cart never references the removed id.
func (s *CartService) removeItemLocked(itemID string) error {
	cart := s.Repo.Load()
	if _, ok := cart[itemID]; !ok {
		return nil
	}
	delete(cart, itemID)
	if err := s.Repo.Save(cart); err != nil {
		return err
	}
	s.Events.Publish(EventCartChanged, buildCartView(cart, s.MenuRepo.Load()))
	return nil
}

func findItem(menu []entity.MenuItem, id string) *entity.MenuItem {
	for i := range menu {
		if menu[i].ID == id {
			return &menu[i]
		}
	}
	return nil
}

// buildCartView resolves each entry against the catalog. A stale id (item
// deleted since it was added) keeps its row but contributes zero, with the
// raw id standing in for the name.
func buildCartView(cart map[string]int, menu []entity.MenuItem) *entity.CartView {
	lines := make([]entity.CartLine, 0, len(cart))
	subtotal := decimal.Zero
	for id, qty := range cart {
		name, price := id, decimal.Zero
		if item := findItem(menu, id); item != nil {
			name, price = item.Name, item.Price
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(qty)))
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, entity.CartLine{
			ID:               id,
			Name:             name,
			Price:            price,
			Quantity:         qty,
			LineTotal:        lineTotal,
			PriceDisplay:     utils.FormatMoney(price),
			LineTotalDisplay: utils.FormatMoney(lineTotal),
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return &entity.CartView{
		Lines:           lines,
		Subtotal:        subtotal,
		SubtotalDisplay: utils.FormatMoney(subtotal),
	}
}
