package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
)

// CheckoutService turns the current cart into an immutable sale record:
// snapshot at live prices, append to the ledger, then clear the cart. The
// shared lock is held for the whole sequence, so the snapshot can never
// interleave with a concurrent cart mutation.
type CheckoutService struct {
	mu    *sync.Mutex
	Cart  *CartService
	Sales *SalesService
	Now   func() time.Time
}

func NewCheckoutService(mu *sync.Mutex, cart *CartService, sales *SalesService) *CheckoutService {
	return &CheckoutService{mu: mu, Cart: cart, Sales: sales, Now: time.Now}
}

// Checkout bills the current cart. An empty cart returns ErrEmptyCart with
// nothing mutated. On success the record has been persisted and the cart
// cleared, in that order: a failed ledger write leaves the cart intact so
// the operator can retry.
func (s *CheckoutService) Checkout() (*entity.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.Cart.viewLocked()
	if len(view.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]entity.SaleItem, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, entity.SaleItem{
			ID:       line.ID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	rec := entity.SaleRecord{
		ID:        uuid.NewString(),
		Timestamp: s.Now().Format(time.RFC3339),
		Items:     items,
		Total:     view.Subtotal,
	}

	if err := s.Sales.appendLocked(rec); err != nil {
		return nil, err
	}
	if _, err := s.Cart.clearLocked(); err != nil {
		return nil, err
	}
	return &rec, nil
}
