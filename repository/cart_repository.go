package repository

type CartRepository struct {
	Store Store
}

func NewCartRepository(store Store) *CartRepository { return &CartRepository{Store: store} }

// Load returns the id -> quantity mapping, empty when the store has nothing
// usable. Stored entries with a quantity below one are dropped on the way
// in so the positive-quantity invariant holds no matter what was persisted.
func (r *CartRepository) Load() map[string]int {
	cart := map[string]int{}
	if !loadJSON(r.Store, KeyCart, &cart) {
		return map[string]int{}
	}
	for id, qty := range cart {
		if qty < 1 {
			delete(cart, id)
		}
	}
	return cart
}

func (r *CartRepository) Save(cart map[string]int) error {
	return saveJSON(r.Store, KeyCart, cart)
}

// Clear removes the stored record entirely; a missing key loads as an empty
// cart.
func (r *CartRepository) Clear() error {
	return r.Store.Delete(KeyCart)
}
