package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
)

func sale(ts string, total int64) entity.SaleRecord {
	return entity.SaleRecord{ID: ts, Timestamp: ts, Total: decimal.NewFromInt(total)}
}

func TestMonthlySummaryGroupsByCalendarMonth(t *testing.T) {
	e := newTestEngine()
	for _, rec := range []entity.SaleRecord{
		sale("2026-08-01T10:00:00Z", 60),
		sale("2026-08-15T09:30:00+05:30", 40),
		sale("2026-07-31T23:00:00Z", 25),
	} {
		if err := e.Sales.Append(rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	summary := e.Sales.MonthlySummary()
	if len(summary) != 2 {
		t.Fatalf("want 2 months, got %+v", summary)
	}
	// Newest month first.
	if summary[0].Month != "2026-08" || summary[1].Month != "2026-07" {
		t.Fatalf("order wrong: %s, %s", summary[0].Month, summary[1].Month)
	}
	aug := summary[0]
	if aug.Orders != 2 || !aug.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("august: orders=%d total=%s, want 2/100", aug.Orders, aug.Total)
	}
	if aug.Label != "August 2026" {
		t.Errorf("label = %q, want August 2026", aug.Label)
	}
	if aug.TotalDisplay != "₹100.00" {
		t.Errorf("total display = %q", aug.TotalDisplay)
	}
}

func TestMonthlySummaryUsesRecordLocalDate(t *testing.T) {
	e := newTestEngine()
	// 01:00 on Sep 1 at +05:30 is still Aug 31 in UTC; the record's own
	// calendar wins.
	if err := e.Sales.Append(sale("2026-09-01T01:00:00+05:30", 10)); err != nil {
		t.Fatalf("append: %v", err)
	}
	summary := e.Sales.MonthlySummary()
	if len(summary) != 1 || summary[0].Month != "2026-09" {
		t.Errorf("want 2026-09, got %+v", summary)
	}
}

func TestMonthlySummarySkipsUnparsableTimestamps(t *testing.T) {
	e := newTestEngine()
	e.Sales.Append(sale("2026-08-01T10:00:00Z", 60))
	e.Sales.Append(sale("yesterday-ish", 999))

	summary := e.Sales.MonthlySummary()
	if len(summary) != 1 {
		t.Fatalf("bad timestamp must be skipped, got %+v", summary)
	}
	if summary[0].Orders != 1 || !summary[0].Total.Equal(decimal.NewFromInt(60)) {
		t.Errorf("skipped record leaked into totals: %+v", summary[0])
	}
}

func TestAppendIsAppendOnly(t *testing.T) {
	e := newTestEngine()
	e.Sales.Append(sale("2026-08-01T10:00:00Z", 60))
	e.Sales.Append(sale("2026-08-02T10:00:00Z", 40))

	ledger := e.Sales.List()
	if len(ledger) != 2 {
		t.Fatalf("ledger length = %d, want 2", len(ledger))
	}
	if ledger[0].Timestamp != "2026-08-01T10:00:00Z" {
		t.Errorf("append must preserve order, got %q first", ledger[0].Timestamp)
	}
}
