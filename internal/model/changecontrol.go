package model

import "fmt"

// ChangeOrderMode sets how tasks are ordered inside a change control.
type ChangeOrderMode string

const (
	// ChangeOrderModeLinear runs all the tasks at the same time.
	ChangeOrderModeLinear ChangeOrderMode = "linear"
	// ChangeOrderModeIncremental runs the tasks one after the other.
	ChangeOrderModeIncremental ChangeOrderMode = "incremental"
)

// Validate checks the mode is a known one.
func (m ChangeOrderMode) Validate() error {
	switch m {
	case ChangeOrderModeLinear, ChangeOrderModeIncremental:
		return nil
	}
	return fmt.Errorf("unknown change order mode %q: %w", m, ErrNotValid)
}

// Change is a task scheduled in a change control at a given position.
type Change struct {
	TaskID string
	Order  int
}

// ChangeControl is a set of tasks scheduled to run together on the server.
// ScheduleAt uses the "2006-01-02 15:04" layout, empty means manual execution.
type ChangeControl struct {
	Name             string
	Changes          []Change
	TimeZone         string
	Country          string
	ScheduleAt       string
	SnapshotTemplate string
	Type             string
	StopOnError      bool
}

// ChangeControlResult is the server answer to a change control creation.
type ChangeControlResult struct {
	ID     string
	Status string
}
