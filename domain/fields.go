package domain

import (
	"strings"
	"time"
)

// Categories is the enumerated domain shared by Task.Category and
// Event.Category.
var Categories = []string{"School", "Work", "Personal", "Other"}

// Priorities is the enumerated domain for Task.Priority.
var Priorities = []string{"High", "Medium", "Low"}

// Statuses is the enumerated domain for Task.Status.
var Statuses = []string{"pending", "done"}

const (
	DefaultCategory = "Other"
	DefaultPriority = "Medium"
	DefaultStatus   = "pending"
)

func checkEnum(field string, set []string, v string) error {
	for _, s := range set {
		if s == v {
			return nil
		}
	}
	return invalidf(field, "%q is not one of %s", v, strings.Join(set, ", "))
}

// parseDate normalizes a calendar date to zero-padded YYYY-MM-DD so that
// lexicographic order equals chronological order.
func parseDate(field, v string) (string, error) {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return "", invalidf(field, "%q is not a YYYY-MM-DD date", v)
	}
	return d.Format("2006-01-02"), nil
}

// parseClock normalizes a time of day to zero-padded HH:MM.
func parseClock(field, v string) (string, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", invalidf(field, "%q is not an HH:MM time", v)
	}
	return t.Format("15:04"), nil
}
