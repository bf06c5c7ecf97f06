package entity

import (
	"github.com/shopspring/decimal"
)

// CartLine is one rendered row of the draft order. Prices are resolved from
// the live catalog each time a view is built; an id whose menu item has been
// deleted shows up with Name = id and a zero price.
type CartLine struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
	PriceDisplay     string          `json:"priceDisplay"`
	LineTotalDisplay string          `json:"lineTotalDisplay"`
}

// CartView is what the register UI renders: the lines plus their subtotal.
// Subtotal equals total in this system, there is no tax or discount layer.
type CartView struct {
	Lines           []CartLine      `json:"entries"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	SubtotalDisplay string          `json:"subtotalDisplay"`
}
