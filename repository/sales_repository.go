package repository

import (
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
)

type SalesRepository struct {
	Store Store
}

func NewSalesRepository(store Store) *SalesRepository { return &SalesRepository{Store: store} }

// Load returns the full sales ledger, empty when the store has nothing
// usable.
func (r *SalesRepository) Load() []entity.SaleRecord {
	var sales []entity.SaleRecord
	if !loadJSON(r.Store, KeySales, &sales) {
		return []entity.SaleRecord{}
	}
	return sales
}

// Save persists the whole ledger. The ledger grows without bound; archival
// was deliberately left out of scope.
func (r *SalesRepository) Save(sales []entity.SaleRecord) error {
	return saveJSON(r.Store, KeySales, sales)
}
