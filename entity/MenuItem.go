package entity

import (
	"github.com/shopspring/decimal"
)

// MenuItem is a sellable dish. ID is unique within the catalog and never
// changes after creation; Price carries exactly two decimal places.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}
