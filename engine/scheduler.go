package engine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	// ErrDuplicateTask is returned when a task name is already registered
	ErrDuplicateTask = errors.New("duplicate task")
	// ErrNilTask is returned when registering a nil task function
	ErrNilTask = errors.New("nil task")
)

// TaskFunc is invoked once per tick with the delta of the previous frame
type TaskFunc func(dt time.Duration)

// Task is a named frame callable at a numeric priority
type Task struct {
	Priority int
	Name     string
	Fn       TaskFunc
}

// TaskTable keeps tasks in ascending priority; equal priorities run in registration order
type TaskTable struct {
	tasks []Task
}

// NewTaskTable creates an empty table
func NewTaskTable() *TaskTable {
	return &TaskTable{}
}

// Register adds a task; names are unique within a table
func (t *TaskTable) Register(priority int, name string, fn TaskFunc) error {
	if fn == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilTask)
	}
	if t.index(name) >= 0 {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateTask)
	}
	t.tasks = append(t.tasks, Task{Priority: priority, Name: name, Fn: fn})
	slices.SortStableFunc(t.tasks, func(a, b Task) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return nil
}

// Remove deletes a task by name and reports whether it existed
func (t *TaskTable) Remove(name string) bool {
	i := t.index(name)
	if i < 0 {
		return false
	}
	t.tasks = slices.Delete(t.tasks, i, i+1)
	return true
}

// Tasks returns a snapshot in execution order
func (t *TaskTable) Tasks() []Task {
	return slices.Clone(t.tasks)
}

// Len returns the registered task count
func (t *TaskTable) Len() int {
	return len(t.tasks)
}

// Run executes every task once in order
// Tasks added or removed during the run take effect next tick
func (t *TaskTable) Run(dt time.Duration) {
	for _, task := range t.Tasks() {
		task.Fn(dt)
	}
}

func (t *TaskTable) index(name string) int {
	return slices.IndexFunc(t.tasks, func(task Task) bool { return task.Name == name })
}
