package model

import (
	"strings"
	"time"
)

// TaskStatus is the status of a task as reported by the server. The vocabulary
// is owned by the server, these are the values we know about plus
// TaskStatusUnknown, used when no status has been observed yet.
type TaskStatus string

const (
	TaskStatusUnknown    TaskStatus = "UNKNOWN"
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In-Progress"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// IsCompleted returns true when the status is the completed terminal marker,
// regardless of its case.
func (s TaskStatus) IsCompleted() bool {
	return strings.EqualFold(string(s), string(TaskStatusCompleted))
}

// IsFailed returns true when the server reports the task as failed or cancelled.
func (s TaskStatus) IsFailed() bool {
	return strings.EqualFold(string(s), string(TaskStatusFailed)) ||
		strings.EqualFold(string(s), string(TaskStatusCancelled))
}

// TaskWaitState is the state of a task completion wait.
type TaskWaitState string

const (
	TaskWaitStateWaiting   TaskWaitState = "WAITING"
	TaskWaitStateCompleted TaskWaitState = "COMPLETED"
	TaskWaitStateTimedOut  TaskWaitState = "TIMED_OUT"
)

// Task is a server side task (work order) created when a change is submitted.
type Task struct {
	ID          string
	Description string
	Status      TaskStatus
	Hostname    string
	CreatedBy   string
	CreatedAt   time.Time
}

// TaskRun is the local record of a task execution and its completion wait.
type TaskRun struct {
	ID         string
	TaskID     string
	Hostname   string
	Status     TaskStatus
	State      TaskWaitState
	Attempts   int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Completed returns true when the task reached the completed state.
func (t TaskRun) Completed() bool { return t.State == TaskWaitStateCompleted }
