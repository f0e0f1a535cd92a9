package domain

import "strings"

// Event is a calendar entry. Date and times are stored in their
// zero-padded canonical forms so the (date, start_time) list order can be
// produced by plain string comparison.
type Event struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Date      string `json:"date" db:"date"`
	StartTime string `json:"start_time" db:"start_time"`
	EndTime   string `json:"end_time" db:"end_time"`
	Category  string `json:"category" db:"category"`
}

// NewEvent returns an event with every optional field at its schema default.
func NewEvent() Event {
	return Event{Category: DefaultCategory}
}

// EventPayload is the accepted write shape for events.
type EventPayload struct {
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Category  *string `json:"category"`
}

// Apply validates p and merges it onto e. Date, start_time and end_time
// are required on a full write. start_time < end_time is not enforced.
func (p EventPayload) Apply(e *Event, partial bool) error {
	if !partial {
		required := []struct {
			field string
			value *string
		}{
			{"title", p.Title},
			{"date", p.Date},
			{"start_time", p.StartTime},
			{"end_time", p.EndTime},
		}
		for _, r := range required {
			if r.value == nil {
				return invalidf(r.field, "required field is missing")
			}
		}
		next := NewEvent()
		next.ID = e.ID
		*e = next
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return invalidf("title", "must not be empty")
		}
		e.Title = title
	}
	if p.Date != nil {
		d, err := parseDate("date", *p.Date)
		if err != nil {
			return err
		}
		e.Date = d
	}
	if p.StartTime != nil {
		t, err := parseClock("start_time", *p.StartTime)
		if err != nil {
			return err
		}
		e.StartTime = t
	}
	if p.EndTime != nil {
		t, err := parseClock("end_time", *p.EndTime)
		if err != nil {
			return err
		}
		e.EndTime = t
	}
	return nil
}
