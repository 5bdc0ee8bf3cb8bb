package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const taskIDSeparator = "-task-"

// ScheduleEntry is one dated block of the curriculum.
//
// Task identity is positional: the i-th task of entry E is "E-task-i".
// Reordering or inserting tasks in a published plan changes which stored
// completions apply to which task.
type ScheduleEntry struct {
	ID        string
	Phase     int
	DateRange string
	Subject   string
	Focus     string
	Tasks     []string
	IsTestDay *bool
}

// TaskID returns the completion id of the task at index i.
func (e *ScheduleEntry) TaskID(i int) string {
	return TaskID(e.ID, i)
}

// TaskIDs returns the completion ids of all tasks in order.
func (e *ScheduleEntry) TaskIDs() []string {
	ids := make([]string, len(e.Tasks))
	for i := range e.Tasks {
		ids[i] = e.TaskID(i)
	}
	return ids
}

// TestDay reports the optional test-day flag, defaulting to false.
func (e *ScheduleEntry) TestDay() bool {
	return BoolFromPtrWithDefault(false, e.IsTestDay)
}

// Range parses the entry's date range.
func (e *ScheduleEntry) Range() (DateRange, error) {
	r, err := ParseDateRange(e.DateRange)
	if err != nil {
		return DateRange{}, fmt.Errorf("schedule entry %s: %w", e.ID, err)
	}
	return r, nil
}

// TaskID builds the composite completion id "<entryID>-task-<index>".
func TaskID(entryID string, index int) string {
	return entryID + taskIDSeparator + strconv.Itoa(index)
}

// SplitTaskID is the inverse of TaskID.
func SplitTaskID(taskID string) (entryID string, index int, ok bool) {
	i := strings.LastIndex(taskID, taskIDSeparator)
	if i <= 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(taskID[i+len(taskIDSeparator):])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return taskID[:i], n, true
}
