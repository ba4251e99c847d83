package service

import (
	"context"
	"fmt"
	"strings"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
	"dayplanner/internal/store"
)

// ItemInput is the form payload for creating or updating an item. An empty
// ID means create; a known ID fully replaces the stored record.
type ItemInput struct {
	ID         string
	Title      string
	Date       string
	Time       string
	EndTime    string
	Status     model.Status
	Type       model.ItemType
	Priority   model.Priority
	Category   model.Category
	Reminder   bool
	Location   string
	Notes      string
	Attachment *model.Attachment
}

// Planner orchestrates item mutations. Every mutation persists the store
// and then rebuilds the reminder set before returning, so no derived
// structure can reference stale data.
type Planner struct {
	store     *store.ItemStore
	reminders *ReminderScheduler
}

func NewPlanner(st *store.ItemStore, reminders *ReminderScheduler) *Planner {
	return &Planner{store: st, reminders: reminders}
}

// SaveItem creates or replaces an item from form input.
func (p *Planner) SaveItem(ctx context.Context, input ItemInput) (model.Item, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Item{}, fmt.Errorf("title is required")
	}

	it := model.Item{
		ID:         input.ID,
		Title:      title,
		Date:       input.Date,
		Time:       input.Time,
		EndTime:    input.EndTime,
		Status:     input.Status,
		Type:       input.Type,
		Priority:   input.Priority,
		Category:   input.Category,
		Reminder:   input.Reminder,
		Location:   strings.TrimSpace(input.Location),
		Notes:      strings.TrimSpace(input.Notes),
		Attachment: input.Attachment,
	}
	if it.Status == "" {
		it.Status = model.StatusTodo
	}
	// An update that sends no new attachment keeps the stored one.
	if it.Attachment == nil && it.ID != "" {
		if prev, ok := p.store.Get(it.ID); ok {
			it.Attachment = prev.Attachment
		}
	}

	it.ID = p.store.Put(it)
	if err := p.commit(ctx); err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// SetStatus moves an item to the given status. Toggling done also updates
// the legacy completed flag via the store's save boundary.
func (p *Planner) SetStatus(ctx context.Context, id string, status model.Status) error {
	it, ok := p.store.Get(id)
	if !ok {
		return fmt.Errorf("item %s not found", id)
	}
	it.Status = status
	p.store.Put(it)
	return p.commit(ctx)
}

// ToggleDone flips an item between done and todo.
func (p *Planner) ToggleDone(ctx context.Context, id string) error {
	it, ok := p.store.Get(id)
	if !ok {
		return fmt.Errorf("item %s not found", id)
	}
	if it.Done() {
		return p.SetStatus(ctx, id, model.StatusTodo)
	}
	return p.SetStatus(ctx, id, model.StatusDone)
}

// Postpone shifts an item's date forward by one day.
func (p *Planner) Postpone(ctx context.Context, id string) error {
	it, ok := p.store.Get(id)
	if !ok {
		return fmt.Errorf("item %s not found", id)
	}
	it.Date = datekey.AddDays(it.Date, 1)
	p.store.Put(it)
	return p.commit(ctx)
}

// DeleteItem removes an item by id.
func (p *Planner) DeleteItem(ctx context.Context, id string) error {
	p.store.Delete(id)
	return p.commit(ctx)
}

// commit persists the collection and rebuilds every reminder timer from the
// fresh snapshot. Partial invalidation is not permitted.
func (p *Planner) commit(ctx context.Context) error {
	if err := p.store.Save(ctx); err != nil {
		return err
	}
	p.reminders.Rebuild(p.store.Items())
	return nil
}
