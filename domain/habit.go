package domain

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// Habit is a recurring activity with one scheduling flag per weekday. The
// flags mean "scheduled on that weekday", not a completion history.
type Habit struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Mon       bool      `json:"mon" db:"mon"`
	Tue       bool      `json:"tue" db:"tue"`
	Wed       bool      `json:"wed" db:"wed"`
	Thu       bool      `json:"thu" db:"thu"`
	Fri       bool      `json:"fri" db:"fri"`
	Sat       bool      `json:"sat" db:"sat"`
	Sun       bool      `json:"sun" db:"sun"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Checks derives the weekday-name view of the scheduling flags.
func (h Habit) Checks() map[string]bool {
	return map[string]bool{
		"Mon": h.Mon,
		"Tue": h.Tue,
		"Wed": h.Wed,
		"Thu": h.Thu,
		"Fri": h.Fri,
		"Sat": h.Sat,
		"Sun": h.Sun,
	}
}

// MarshalJSON serializes the stored fields plus the derived checks map.
func (h Habit) MarshalJSON() ([]byte, error) {
	type stored Habit
	return sonic.ConfigStd.Marshal(struct {
		stored
		Checks map[string]bool `json:"checks"`
	}{stored(h), h.Checks()})
}

// HabitPayload is the accepted write shape for habits. A checks value in
// the request body is dropped on decode.
type HabitPayload struct {
	Name *string `json:"name"`
	Mon  *bool   `json:"mon"`
	Tue  *bool   `json:"tue"`
	Wed  *bool   `json:"wed"`
	Thu  *bool   `json:"thu"`
	Fri  *bool   `json:"fri"`
	Sat  *bool   `json:"sat"`
	Sun  *bool   `json:"sun"`
}

// Apply validates p and merges it onto h. A non-partial apply resets every
// omitted weekday flag to false and requires name.
func (p HabitPayload) Apply(h *Habit, partial bool) error {
	if !partial {
		if p.Name == nil {
			return invalidf("name", "required field is missing")
		}
		next := Habit{ID: h.ID, CreatedAt: h.CreatedAt}
		*h = next
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return invalidf("name", "must not be empty")
		}
		h.Name = name
	}
	if p.Mon != nil {
		h.Mon = *p.Mon
	}
	if p.Tue != nil {
		h.Tue = *p.Tue
	}
	if p.Wed != nil {
		h.Wed = *p.Wed
	}
	if p.Thu != nil {
		h.Thu = *p.Thu
	}
	if p.Fri != nil {
		h.Fri = *p.Fri
	}
	if p.Sat != nil {
		h.Sat = *p.Sat
	}
	if p.Sun != nil {
		h.Sun = *p.Sun
	}
	return nil
}
