package utils

import (
	"github.com/shopspring/decimal"
)

// CurrencySymbol is fixed for the whole register; multi-currency is out of
// scope.
const CurrencySymbol = "₹"

// FormatMoney renders an amount with the currency symbol and exactly two
// decimal places, e.g. ₹60.00.
func FormatMoney(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}
