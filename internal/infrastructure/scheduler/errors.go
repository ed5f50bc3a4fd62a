package scheduler

import "errors"

var (
	// ErrSchedulerRunning is returned when tasks are registered after Start
	ErrSchedulerRunning = errors.New("scheduler is already running")

	// ErrInvalidTask is returned for a task without a name, function or positive interval
	ErrInvalidTask = errors.New("invalid scheduled task")

	// ErrDuplicateTask is returned when two tasks share a name
	ErrDuplicateTask = errors.New("task already registered")

	// ErrTaskNotFound is returned when no task has the given name
	ErrTaskNotFound = errors.New("task not found")
)
