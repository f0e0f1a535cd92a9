package domain

import (
	"errors"
	"testing"
)

func TestEventApplyMissingStartTime(t *testing.T) {
	event := NewEvent()
	payload := EventPayload{Title: ptr("Standup"), Date: ptr("2024-01-02"), EndTime: ptr("10:00")}
	err := payload.Apply(&event, false)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "start_time" {
		t.Fatalf("expected validation error on start_time, got %v", err)
	}
}

func TestEventApplyDefaultsAndNormalization(t *testing.T) {
	event := NewEvent()
	payload := EventPayload{
		Title:     ptr("Standup"),
		Date:      ptr("2024-1-2"),
		StartTime: ptr("9:05"),
		EndTime:   ptr("9:35"),
	}
	if err := payload.Apply(&event, false); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if event.Category != "Other" {
		t.Fatalf("category default not applied: %+v", event)
	}
	if event.Date != "2024-01-02" || event.StartTime != "09:05" || event.EndTime != "09:35" {
		t.Fatalf("values not normalized: %+v", event)
	}
}

func TestEventApplyRejectsBadDate(t *testing.T) {
	event := NewEvent()
	payload := EventPayload{Title: ptr("x"), Date: ptr("01/02/2024"), StartTime: ptr("09:00"), EndTime: ptr("10:00")}
	err := payload.Apply(&event, false)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "date" {
		t.Fatalf("expected validation error on date, got %v", err)
	}
}

func TestEventApplyRejectsBadCategory(t *testing.T) {
	event := NewEvent()
	payload := EventPayload{Title: ptr("x"), Date: ptr("2024-01-02"), StartTime: ptr("09:00"), EndTime: ptr("10:00"), Category: ptr("Chores")}
	err := payload.Apply(&event, false)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "category" {
		t.Fatalf("expected validation error on category, got %v", err)
	}
}

// End before start is accepted: the schema does not order the two times.
func TestEventApplyAllowsEndBeforeStart(t *testing.T) {
	event := NewEvent()
	payload := EventPayload{Title: ptr("x"), Date: ptr("2024-01-02"), StartTime: ptr("10:00"), EndTime: ptr("09:00")}
	if err := payload.Apply(&event, false); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if event.StartTime != "10:00" || event.EndTime != "09:00" {
		t.Fatalf("times altered: %+v", event)
	}
}

func TestEventApplyPartialKeepsRequiredFields(t *testing.T) {
	event := Event{ID: 3, Title: "Standup", Date: "2024-01-02", StartTime: "09:00", EndTime: "09:30", Category: "Work"}
	if err := (EventPayload{Title: ptr("Standup (moved)")}).Apply(&event, true); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if event.Date != "2024-01-02" || event.StartTime != "09:00" || event.Category != "Work" {
		t.Fatalf("partial update clobbered fields: %+v", event)
	}
}
