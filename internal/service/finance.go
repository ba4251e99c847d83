package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"dayplanner/internal/model"
	"dayplanner/internal/repository"
	"dayplanner/internal/store"
)

// FinanceService keeps the ledger entries under their record key. Plain
// form-to-storage plumbing; the only derived numbers are the month total
// and the planned count.
type FinanceService struct {
	records store.Records
	entries []model.FinanceEntry
}

func NewFinanceService(records store.Records) *FinanceService {
	return &FinanceService{records: records}
}

// Load reads the persisted ledger; missing or unparsable data starts empty.
func (s *FinanceService) Load(ctx context.Context) error {
	raw, ok, err := s.records.Load(ctx, repository.KeyFinance)
	if err != nil {
		return fmt.Errorf("load finance: %w", err)
	}
	if !ok {
		s.entries = nil
		return nil
	}
	var entries []model.FinanceEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("[warn] stored finance ledger unparsable, starting empty: %v", err)
		s.entries = nil
		return nil
	}
	s.entries = entries
	return nil
}

func (s *FinanceService) save(ctx context.Context) error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("marshal finance: %w", err)
	}
	if err := s.records.Save(ctx, repository.KeyFinance, string(data)); err != nil {
		return fmt.Errorf("save finance: %w", err)
	}
	return nil
}

// Put inserts or replaces an entry by id, assigning ids to new entries.
func (s *FinanceService) Put(ctx context.Context, e model.FinanceEntry) (model.FinanceEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	replaced := false
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			s.entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		s.entries = append(s.entries, e)
	}
	return e, s.save(ctx)
}

// Delete removes an entry by id.
func (s *FinanceService) Delete(ctx context.Context, id string) error {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return s.save(ctx)
}

// Entries returns the ledger sorted by date key.
func (s *FinanceService) Entries() []model.FinanceEntry {
	out := make([]model.FinanceEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// MonthTotal sums the paid expenses dated in the month containing now.
func (s *FinanceService) MonthTotal(now time.Time) float64 {
	prefix := fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))
	var total float64
	for _, e := range s.entries {
		if e.Kind == model.FinanceExpense && len(e.Date) >= 7 && e.Date[:7] == prefix {
			total += e.Amount
		}
	}
	return total
}

// PlannedCount counts entries still marked as planned.
func (s *FinanceService) PlannedCount() int {
	n := 0
	for _, e := range s.entries {
		if e.Kind == model.FinancePlanned {
			n++
		}
	}
	return n
}
