// Package store owns the in-memory item collection and its persistence to
// the key-value record repository. No other component mutates items; views
// read snapshots and request changes through Put/Delete.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
	"dayplanner/internal/repository"
)

const defaultStartTime = "09:00"

// Records is the persistence collaborator the store needs.
type Records interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, value string) error
}

// ItemStore keeps the ordered item collection in memory and mirrors it to
// the records repository as a single JSON blob.
type ItemStore struct {
	records Records
	key     string
	items   []model.Item
}

func NewItemStore(records Records) *ItemStore {
	return &ItemStore{records: records, key: repository.KeyItems}
}

// NewItemStoreWithKey is used by tests and tooling that need a custom
// record key.
func NewItemStoreWithKey(records Records, key string) *ItemStore {
	return &ItemStore{records: records, key: key}
}

// Load reads the persisted collection. A missing or unparsable record yields
// an empty collection. The legacy migration runs before anything else can
// read the store.
func (s *ItemStore) Load(ctx context.Context) error {
	raw, ok, err := s.records.Load(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	if !ok {
		s.items = nil
		return nil
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[warn] stored items unparsable, starting empty: %v", err)
		s.items = nil
		return nil
	}

	for i := range items {
		MigrateLegacy(&items[i])
	}
	s.items = items
	return nil
}

// MigrateLegacy upgrades a record written by an older version in place:
// missing status derives from the completed flag, missing end time defaults
// to one hour after the start. Running it on migrated data changes nothing.
func MigrateLegacy(it *model.Item) {
	if it.Status == "" {
		if it.Completed {
			it.Status = model.StatusDone
		} else {
			it.Status = model.StatusTodo
		}
	}
	if it.EndTime == "" {
		start := it.Time
		if start == "" {
			start = defaultStartTime
		}
		it.EndTime = datekey.AddHour(start)
	}
}

// Save persists the whole collection. The legacy completed boolean is
// derived from status here, at the serialization boundary only.
func (s *ItemStore) Save(ctx context.Context) error {
	for i := range s.items {
		s.items[i].Completed = s.items[i].Status == model.StatusDone
	}
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	if err := s.records.Save(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

// Put inserts a new item or fully replaces an existing one by id. Items
// without an id get one assigned; the assigned id is returned.
func (s *ItemStore) Put(it model.Item) string {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	for i := range s.items {
		if s.items[i].ID == it.ID {
			s.items[i] = it
			return it.ID
		}
	}
	s.items = append(s.items, it)
	return it.ID
}

// Delete removes the item with the given id; unknown ids are a no-op.
func (s *ItemStore) Delete(id string) {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// Get returns the item with the given id.
func (s *ItemStore) Get(id string) (model.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// Items returns a snapshot of the collection.
func (s *ItemStore) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored items.
func (s *ItemStore) Len() int {
	return len(s.items)
}

// Less is the single canonical ordering: (date key, time string) ascending,
// both compared as strings. Date keys order lexicographically in
// chronological order, so this is a pure string comparison.
func Less(a, b model.Item) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time < b.Time
}

// SortItems sorts a slice by the canonical ordering, stably.
func SortItems(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(items[i], items[j])
	})
}

// FilterAll is the predicate value meaning "no constraint".
const FilterAll = "all"

// Filter holds independent equality predicates, AND-composed. Zero values
// (or FilterAll) leave the corresponding field unconstrained.
type Filter struct {
	Priority string
	Category string
	Date     string
}

func (f Filter) matches(it model.Item) bool {
	if f.Priority != "" && f.Priority != FilterAll && string(it.Priority) != f.Priority {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && string(it.Category) != f.Category {
		return false
	}
	if f.Date != "" && it.Date != f.Date {
		return false
	}
	return true
}

// Select returns the matching items in canonical order. The store itself is
// never mutated by filtering.
func (s *ItemStore) Select(f Filter) []model.Item {
	var out []model.Item
	for _, it := range s.items {
		if f.matches(it) {
			out = append(out, it)
		}
	}
	SortItems(out)
	return out
}
