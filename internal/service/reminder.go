package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
	"dayplanner/internal/notify"
)

const (
	// ReminderLead is how long before an item's start time the
	// notification fires.
	ReminderLead = 30 * time.Minute

	// armWindow bounds how far ahead timers are registered. Items further
	// out get picked up by a later recomputation.
	armWindow = 24 * time.Hour
)

// ReminderScheduler owns the set of pending single-shot reminder timers.
// Timers are never patched incrementally: any item mutation cancels the
// whole set and rebuilds it from the current snapshot, so no timer can
// outlive the item state it was derived from.
type ReminderScheduler struct {
	notifier notify.Notifier
	now      func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer // item id -> armed timer
}

func NewReminderScheduler(notifier notify.Notifier) *ReminderScheduler {
	return &ReminderScheduler{
		notifier: notifier,
		now:      time.Now,
		timers:   make(map[string]*time.Timer),
	}
}

// SetClock replaces the scheduler's clock; tests use it to pin "now".
func (s *ReminderScheduler) SetClock(now func() time.Time) {
	s.now = now
}

// Rebuild cancels every pending timer and recomputes the reminder set from
// the item snapshot. An item gets a timer when it wants a reminder, is not
// done, and its fire point (start minus lead) lies strictly in the future
// within the arm window.
func (s *ReminderScheduler) Rebuild(items []model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}

	now := s.now()
	for _, it := range items {
		if !it.Reminder || it.Done() {
			continue
		}
		fireAt, err := datekey.At(it.Date, it.Time)
		if err != nil {
			continue
		}
		fireAt = fireAt.Add(-ReminderLead)

		delay := fireAt.Sub(now)
		if delay <= 0 || delay >= armWindow {
			continue
		}

		item := it
		s.timers[it.ID] = time.AfterFunc(delay, func() {
			s.fire(item)
		})
	}
}

// Pending reports how many timers are currently armed.
func (s *ReminderScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every pending timer. Terminal; used on shutdown.
func (s *ReminderScheduler) Stop() {
	s.Rebuild(nil)
}

// fire delivers the notification for one item and discards its timer entry.
func (s *ReminderScheduler) fire(it model.Item) {
	s.mu.Lock()
	delete(s.timers, it.ID)
	s.mu.Unlock()

	msg := fmt.Sprintf("Reminder: %q at %s (in 30 minutes).", it.Title, it.Time)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.notifier.Notify(ctx, msg); err != nil {
		log.Printf("[warn] reminder notify: %v", err)
	}
}
