package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/repository"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/utils"
)

// SalesService owns the append-only ledger of completed sales.
type SalesService struct {
	mu     *sync.Mutex
	Repo   *repository.SalesRepository
	Events EventPublisher
}

func NewSalesService(mu *sync.Mutex, repo *repository.SalesRepository, events EventPublisher) *SalesService {
	return &SalesService{mu: mu, Repo: repo, Events: events}
}

// MonthSummary aggregates one calendar month of sales.
type MonthSummary struct {
	Month        string          `json:"month"` // "2026-08"
	Label        string          `json:"label"` // "August 2026"
	Orders       int             `json:"orders"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"totalDisplay"`
}

// Append pushes a record onto the ledger and persists the whole thing.
// Records are never mutated or deleted afterwards; there is no void or
// refund operation.
func (s *SalesService) Append(rec entity.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(rec)
}

func (s *SalesService) appendLocked(rec entity.SaleRecord) error {
	sales := append(s.Repo.Load(), rec)
	if err := s.Repo.Save(sales); err != nil {
		return err
	}
	s.Events.Publish(EventSalesChanged, summarizeByMonth(sales))
	return nil
}

// List returns the full ledger.
func (s *SalesService) List() []entity.SaleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Load()
}

// MonthlySummary groups the ledger by the calendar month of each record's
// timestamp, most recent month first.
func (s *SalesService) MonthlySummary() []MonthSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarizeByMonth(s.Repo.Load())
}

// summarizeByMonth buckets records by "YYYY-MM" in the record's own offset
// (the register's local calendar day, not UTC). Records with an unparsable
// timestamp are skipped rather than failing the whole report.
func summarizeByMonth(sales []entity.SaleRecord) []MonthSummary {
	buckets := map[string]*MonthSummary{}
	for _, rec := range sales {
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", ts.Year(), int(ts.Month()))
		b, ok := buckets[key]
		if !ok {
			b = &MonthSummary{Month: key, Label: ts.Format("January 2006")}
			buckets[key] = b
		}
		b.Orders++
		b.Total = b.Total.Add(rec.Total)
	}

	out := make([]MonthSummary, 0, len(buckets))
	for _, b := range buckets {
		b.TotalDisplay = utils.FormatMoney(b.Total)
		out = append(out, *b)
	}
	// Keys are zero-padded, so lexicographic descending is newest first.
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}
