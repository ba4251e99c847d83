package model

// Status tracks an item's progress. The legacy Completed boolean is derived
// from it at the store boundary for records written by older versions.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
)

// ItemType distinguishes plain tasks from meetings; meetings drive the
// month-grid coloring precedence.
type ItemType string

const (
	TypeTask    ItemType = "task"
	TypeMeeting ItemType = "meeting"
)

// Category drives view coloring and filtering.
type Category string

const (
	CategoryWork    Category = "work"
	CategoryPrivate Category = "private"
	CategoryOther   Category = "other"
)

// Priority is a filtering/badging ordinal; it never affects scheduling.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// AttachmentKind classifies an attachment payload.
type AttachmentKind string

const (
	AttachmentImage AttachmentKind = "image"
	AttachmentVideo AttachmentKind = "video"
)

// Attachment is an optional file reference carried by an item. JSON tags
// match the legacy record layout so old attachments keep loading.
type Attachment struct {
	Name    string         `json:"name"`
	Kind    AttachmentKind `json:"type"`
	Content string         `json:"dataUrl"`
}

// Item is a single schedulable activity. Date is a canonical local date key
// ("YYYY-MM-DD"); Time and EndTime are local "HH:MM" clock strings.
type Item struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
	EndTime    string      `json:"endTime"`
	Status     Status      `json:"status"`
	Type       ItemType    `json:"type"`
	Priority   Priority    `json:"priority"`
	Category   Category    `json:"category"`
	Reminder   bool        `json:"reminder"`
	Location   string      `json:"location,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`

	// Completed mirrors Status==done for backward compatibility with
	// records that predate the status field. Status is the source of truth.
	Completed bool `json:"completed"`
}

// Done reports whether the item is finished.
func (it Item) Done() bool {
	return it.Status == StatusDone
}
