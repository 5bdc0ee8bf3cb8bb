package domain

import "strings"

// MainSubjectPlaceholder is replaced with the active subject when a
// routine item is displayed.
const MainSubjectPlaceholder = "Main Subject"

// FallbackSubject stands in for the subject on days outside the plan.
const FallbackSubject = "Study Session"

// RoutineItem is one slot of the recurring daily schedule.
type RoutineItem struct {
	ID       string
	Time     string
	Task     string
	Category RoutineCategory
	Duration float64 // hours
	Details  *string

	// SubjectTask replaces Task while an entry is active. It may carry the
	// placeholder.
	SubjectTask *string
	// FallbackTask replaces Task on days no entry covers.
	FallbackTask *string
}

// IsMainSubject reports whether the task text carries the subject placeholder.
func (r *RoutineItem) IsMainSubject() bool {
	return strings.Contains(r.Task, MainSubjectPlaceholder)
}

// DisplayTask names the item for the day. subject is the active entry's
// subject, empty outside the plan. The per-item templates win over Task;
// the placeholder is replaced with subject, or with FallbackSubject.
func (r *RoutineItem) DisplayTask(subject string) string {
	task := r.Task
	if subject != "" {
		task = CoalesceStr(StrFromPtr(r.SubjectTask), task)
	} else if fallback := StrFromPtr(r.FallbackTask); fallback != "" {
		return fallback
	}
	return strings.Replace(task, MainSubjectPlaceholder, CoalesceStr(subject, FallbackSubject), 1)
}

// AddOn is a recurring daily habit checkbox.
type AddOn struct {
	ID    string
	Label string
	Icon  *string
}

type Tip struct {
	Title     string
	Content   string
	Highlight *bool
}

func (t *Tip) Highlighted() bool {
	return BoolFromPtrWithDefault(false, t.Highlight)
}
