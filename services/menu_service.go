package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/repository"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/utils"
)

// MenuService owns the catalog of sellable items.
type MenuService struct {
	mu     *sync.Mutex
	Repo   *repository.MenuRepository
	Cart   *CartService
	Events EventPublisher
}

func NewMenuService(mu *sync.Mutex, repo *repository.MenuRepository, cart *CartService, events EventPublisher) *MenuService {
	return &MenuService{mu: mu, Repo: repo, Cart: cart, Events: events}
}

// UpsertMenuIn is the menu-form payload. Price accepts a JSON number or
// string and must be zero or positive.
type UpsertMenuIn struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// Upsert validates the form, derives an id for new items and inserts or
// replaces the catalog entry. On validation failure nothing is mutated or
// persisted.
func (s *MenuService) Upsert(in *UpsertMenuIn) (*entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	image := strings.TrimSpace(in.Image)
	if name == "" {
		return nil, invalid("name is required")
	}
	if image == "" {
		return nil, invalid("image is required")
	}
	if in.Price.IsNegative() {
		return nil, invalid("price must be zero or positive")
	}

	items := s.Repo.Load()

	id := strings.TrimSpace(in.ID)
	if id == "" {
		base := utils.Slugify(name)
		if base == "" {
			base = fmt.Sprintf("item-%d", time.Now().UnixMilli())
		}
		id = uniqueID(items, base)
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = "Customer favorite."
	}

	item := entity.MenuItem{
		ID:          id,
		Name:        name,
		Price:       in.Price.Round(2),
		Image:       image,
		Description: description,
	}

	replaced := false
	for i := range items {
		if items[i].ID == id {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := s.Repo.Save(items); err != nil {
		return nil, err
	}
	s.Events.Publish(EventMenuChanged, items)
	return &item, nil
}

// Remove deletes a catalog entry and drops any cart entry for the same id,
// so the cart never references a deleted item once this returns. Unknown
// ids are a silent no-op on the catalog side but the cart is still swept,
// which also scrubs any stale entry left by an earlier delete race.
func (s *MenuService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.Repo.Load()
	kept := make([]entity.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if len(kept) != len(items) {
		if err := s.Repo.Save(kept); err != nil {
			return err
		}
		s.Events.Publish(EventMenuChanged, kept)
	}
	return s.Cart.removeItemLocked(id)
}

// Get returns the item or ErrNotFound.
func (s *MenuService) Get(id string) (*entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item := findItem(s.Repo.Load(), id); item != nil {
		return item, nil
	}
	return nil, ErrNotFound
}

// List returns the catalog in stored order; sorting is left to callers.
func (s *MenuService) List() []entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Load()
}

// uniqueID appends an incrementing numeric suffix until the candidate does
// not collide with an existing item.
func uniqueID(items []entity.MenuItem, base string) string {
	if findItem(items, base) == nil {
		return base
	}
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s-%d", base, counter)
		if findItem(items, candidate) == nil {
			return candidate
		}
	}
}
