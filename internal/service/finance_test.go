package service

import (
	"context"
	"testing"
	"time"

	"dayplanner/internal/model"
	"dayplanner/internal/repository"
)

func TestFinancePutAssignsIDAndSorts(t *testing.T) {
	records := newFakeRecords()
	svc := NewFinanceService(records)
	ctx := context.Background()

	later, err := svc.Put(ctx, model.FinanceEntry{Title: "Rent", Amount: 900, Date: "2025-03-15", Kind: model.FinanceExpense})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if later.ID == "" {
		t.Fatal("no id assigned")
	}
	if _, err := svc.Put(ctx, model.FinanceEntry{Title: "Groceries", Amount: 60, Date: "2025-03-02", Kind: model.FinanceExpense}); err != nil {
		t.Fatalf("put: %v", err)
	}

	entries := svc.Entries()
	if len(entries) != 2 || entries[0].Title != "Groceries" {
		t.Fatalf("entries not sorted by date: %v", entries)
	}
}

func TestFinanceMonthTotalAndPlannedCount(t *testing.T) {
	records := newFakeRecords()
	svc := NewFinanceService(records)
	ctx := context.Background()
	now := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.Local)

	put := func(e model.FinanceEntry) {
		t.Helper()
		if _, err := svc.Put(ctx, e); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	put(model.FinanceEntry{Title: "Rent", Amount: 900, Date: "2025-03-01", Kind: model.FinanceExpense})
	put(model.FinanceEntry{Title: "Groceries", Amount: 55.5, Date: "2025-03-12", Kind: model.FinanceExpense})
	put(model.FinanceEntry{Title: "Last month", Amount: 100, Date: "2025-02-12", Kind: model.FinanceExpense})
	put(model.FinanceEntry{Title: "Vacation", Amount: 500, Date: "2025-03-30", Kind: model.FinancePlanned})

	if got := svc.MonthTotal(now); got != 955.5 {
		t.Errorf("month total = %v, want 955.5", got)
	}
	if got := svc.PlannedCount(); got != 1 {
		t.Errorf("planned count = %d, want 1", got)
	}
}

func TestFinanceDeleteAndReload(t *testing.T) {
	records := newFakeRecords()
	svc := NewFinanceService(records)
	ctx := context.Background()

	e, err := svc.Put(ctx, model.FinanceEntry{Title: "One-off", Amount: 10, Date: "2025-03-01", Kind: model.FinanceExpense})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reloaded := NewFinanceService(records)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(reloaded.Entries()) != 0 {
		t.Fatalf("entries after delete+reload: %v", reloaded.Entries())
	}
}

func TestFinanceLoadUnparsableStartsEmpty(t *testing.T) {
	records := newFakeRecords()
	records.values[repository.KeyFinance] = "{broken"
	svc := NewFinanceService(records)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(svc.Entries()) != 0 {
		t.Fatal("expected empty ledger")
	}
}
