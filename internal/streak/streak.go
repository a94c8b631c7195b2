// Package streak holds the streak transition applied when a habit gets a new
// completion. It only looks at the day immediately before the toggled date;
// it never scans history, and removing a completion leaves counters alone.
package streak

import "time"

// State is a habit's pair of streak counters.
type State struct {
	Current int
	Longest int
}

// Complete returns the counters after a completion is recorded on a day.
// prevCompleted reports whether the day before that day is completed.
func Complete(s State, prevCompleted bool) State {
	if prevCompleted {
		s.Current++
	} else {
		s.Current = 1
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return s
}

// PreviousDay returns the calendar day before day.
func PreviousDay(day time.Time) time.Time {
	return day.AddDate(0, 0, -1)
}
