package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
)

// chanNotifier records delivered messages.
type chanNotifier struct {
	mu       sync.Mutex
	messages []string
	fired    chan string
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{fired: make(chan string, 8)}
}

func (n *chanNotifier) Notify(_ context.Context, message string) error {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
	n.fired <- message
	return nil
}

// itemAt builds a reminder-enabled item starting at the given instant.
func itemAt(id string, start time.Time) model.Item {
	return model.Item{
		ID:       id,
		Title:    "standup",
		Date:     datekey.ToKey(start),
		Time:     start.Format("15:04"),
		EndTime:  start.Add(time.Hour).Format("15:04"),
		Status:   model.StatusTodo,
		Reminder: true,
	}
}

func pinnedScheduler(now time.Time) (*ReminderScheduler, *chanNotifier) {
	n := newChanNotifier()
	s := NewReminderScheduler(n)
	s.SetClock(func() time.Time { return now })
	return s, n
}

func TestRebuildArmWindow(t *testing.T) {
	now := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		start   time.Time
		pending int
	}{
		{"20 minutes out is past the trigger point", now.Add(20 * time.Minute), 0},
		{"40 minutes out arms one timer", now.Add(40 * time.Minute), 1},
		{"exactly at the trigger point is not strictly future", now.Add(30 * time.Minute), 0},
		{"tomorrow inside 24h arms", now.Add(23 * time.Hour), 1},
		{"beyond the 24h window does not arm", now.Add(26 * time.Hour), 0},
		{"yesterday does not arm", now.Add(-2 * time.Hour), 0},
	}
	for _, tc := range tests {
		s, _ := pinnedScheduler(now)
		s.Rebuild([]model.Item{itemAt("a", tc.start)})
		if got := s.Pending(); got != tc.pending {
			t.Errorf("%s: pending = %d, want %d", tc.name, got, tc.pending)
		}
		s.Stop()
	}
}

func TestRebuildSkipsDoneAndSilentItems(t *testing.T) {
	now := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.Local)
	s, _ := pinnedScheduler(now)

	done := itemAt("done", now.Add(40*time.Minute))
	done.Status = model.StatusDone
	silent := itemAt("silent", now.Add(40*time.Minute))
	silent.Reminder = false
	malformed := itemAt("malformed", now.Add(40*time.Minute))
	malformed.Date = "not-a-date"

	s.Rebuild([]model.Item{done, silent, malformed})
	if got := s.Pending(); got != 0 {
		t.Fatalf("pending = %d, want 0", got)
	}
	s.Stop()
}

func TestRebuildCancelsPreviousTimers(t *testing.T) {
	now := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.Local)
	s, _ := pinnedScheduler(now)

	armed := itemAt("a", now.Add(40*time.Minute))
	s.Rebuild([]model.Item{armed})
	if s.Pending() != 1 {
		t.Fatalf("expected one armed timer, got %d", s.Pending())
	}

	// Marking the item done and rebuilding must cancel the timer.
	armed.Status = model.StatusDone
	s.Rebuild([]model.Item{armed})
	if s.Pending() != 0 {
		t.Fatalf("timer survived a rebuild with the item done: %d", s.Pending())
	}
	s.Stop()
}

func TestStopClearsEverything(t *testing.T) {
	now := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.Local)
	s, _ := pinnedScheduler(now)
	s.Rebuild([]model.Item{
		itemAt("a", now.Add(40*time.Minute)),
		itemAt("b", now.Add(2*time.Hour)),
	})
	s.Stop()
	if s.Pending() != 0 {
		t.Fatalf("pending after Stop = %d", s.Pending())
	}
}

func TestFiringDeliversNotificationAndDiscardsTimer(t *testing.T) {
	// Pin the clock 50ms before the fire point so the timer goes off
	// almost immediately.
	start := time.Date(2025, time.March, 7, 13, 0, 0, 0, time.Local)
	now := start.Add(-ReminderLead).Add(-50 * time.Millisecond)

	s, n := pinnedScheduler(now)
	s.Rebuild([]model.Item{itemAt("a", start)})
	if s.Pending() != 1 {
		t.Fatalf("expected one armed timer, got %d", s.Pending())
	}

	select {
	case msg := <-n.fired:
		if !strings.Contains(msg, "standup") || !strings.Contains(msg, "13:00") {
			t.Errorf("notification = %q, want title and time in it", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reminder never fired")
	}

	// Single-shot: the timer entry is gone after firing.
	deadline := time.Now().Add(time.Second)
	for s.Pending() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("timer entry still present after firing: %d", s.Pending())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
