package repository

import (
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
)

type MenuRepository struct {
	Store Store
}

func NewMenuRepository(store Store) *MenuRepository { return &MenuRepository{Store: store} }

// Load returns the catalog, falling back to the seed catalog when the store
// has nothing usable. An explicitly empty catalog also falls back: the
// register must never come up with zero dishes.
func (r *MenuRepository) Load() []entity.MenuItem {
	var items []entity.MenuItem
	if !loadJSON(r.Store, KeyMenu, &items) || len(items) == 0 {
		return SeedCatalog()
	}
	return items
}

func (r *MenuRepository) Save(items []entity.MenuItem) error {
	return saveJSON(r.Store, KeyMenu, items)
}
