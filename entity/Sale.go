package entity

import (
	"github.com/shopspring/decimal"
)

// SaleItem is a by-value snapshot of one billed line. It is decoupled from
// the catalog: later menu edits never change a recorded sale.
type SaleItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// SaleRecord is the immutable receipt of a completed, paid order.
// Timestamp is kept as an RFC3339 string rather than time.Time so that one
// record with a mangled timestamp degrades to a skipped report row instead
// of corrupting the whole ledger on load.
type SaleRecord struct {
	ID        string          `json:"id"`
	Timestamp string          `json:"timestamp"`
	Items     []SaleItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
}
