package domain

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// Task is a single to-do item.
type Task struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	Priority  string    `json:"priority" db:"priority"`
	Status    string    `json:"status" db:"status"`
	Minutes   int       `json:"minutes" db:"minutes"`
	DueDate   string    `json:"due_date" db:"due_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewTask returns a task with every optional field at its schema default.
func NewTask() Task {
	return Task{Category: DefaultCategory, Priority: DefaultPriority, Status: DefaultStatus}
}

// Hours derives the effort estimate in hours, rounded to one decimal.
func (t Task) Hours() float64 {
	if t.Minutes <= 0 {
		return 0
	}
	return math.Round(float64(t.Minutes)/60*10) / 10
}

// MarshalJSON serializes the stored fields plus the derived hours field.
// Hours is recomputed on every read and is never stored.
func (t Task) MarshalJSON() ([]byte, error) {
	type stored Task
	return sonic.ConfigStd.Marshal(struct {
		stored
		Hours float64 `json:"hours"`
	}{stored(t), t.Hours()})
}

// TaskPayload is the accepted write shape for tasks. Pointer fields
// distinguish absent fields from zero values so partial updates merge
// correctly. Computed and store-assigned fields (hours, id, created_at)
// have no slot here: clients may send them, but they are dropped on decode
// and never override the stored or derived values.
type TaskPayload struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	Minutes  *int    `json:"minutes"`
	DueDate  *string `json:"due_date"`
}

// Calendar validity of due dates is deliberately not checked, only shape.
var dueDateRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)

// Apply validates p and merges it onto t. A non-partial apply behaves like
// a full write: required fields must be present and omitted optional
// fields are reset to their defaults. ID and CreatedAt pass through
// untouched either way.
func (p TaskPayload) Apply(t *Task, partial bool) error {
	if !partial {
		if p.Title == nil {
			return invalidf("title", "required field is missing")
		}
		next := NewTask()
		next.ID, next.CreatedAt = t.ID, t.CreatedAt
		*t = next
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return invalidf("title", "must not be empty")
		}
		t.Title = title
	}
	if p.Category != nil {
		if err := checkEnum("category", Categories, *p.Category); err != nil {
			return err
		}
		t.Category = *p.Category
	}
	if p.Priority != nil {
		if err := checkEnum("priority", Priorities, *p.Priority); err != nil {
			return err
		}
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		if err := checkEnum("status", Statuses, *p.Status); err != nil {
			return err
		}
		t.Status = *p.Status
	}
	if p.Minutes != nil {
		if *p.Minutes < 0 {
			return invalidf("minutes", "must not be negative")
		}
		t.Minutes = *p.Minutes
	}
	if p.DueDate != nil {
		d := strings.TrimSpace(*p.DueDate)
		if d != "" && !dueDateRe.MatchString(d) {
			return invalidf("due_date", "%q is not an MM/DD date", d)
		}
		t.DueDate = d
	}
	return nil
}
