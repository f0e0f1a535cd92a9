package domain

import "strings"

// Goal is a weekly target with a manually maintained progress counter.
// Progress is only ever set by explicit client update; nothing in the
// backend increments it.
type Goal struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	TargetPerWeek int    `json:"target_per_week" db:"target_per_week"`
	Progress      int    `json:"progress" db:"progress"`
}

// NewGoal returns a goal with every optional field at its schema default.
func NewGoal() Goal {
	return Goal{TargetPerWeek: 1}
}

// GoalPayload is the accepted write shape for goals.
type GoalPayload struct {
	Name          *string `json:"name"`
	TargetPerWeek *int    `json:"target_per_week"`
	Progress      *int    `json:"progress"`
}

// Apply validates p and merges it onto g.
func (p GoalPayload) Apply(g *Goal, partial bool) error {
	if !partial {
		if p.Name == nil {
			return invalidf("name", "required field is missing")
		}
		next := NewGoal()
		next.ID = g.ID
		*g = next
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return invalidf("name", "must not be empty")
		}
		g.Name = name
	}
	if p.TargetPerWeek != nil {
		if *p.TargetPerWeek < 0 {
			return invalidf("target_per_week", "must not be negative")
		}
		g.TargetPerWeek = *p.TargetPerWeek
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	return nil
}
