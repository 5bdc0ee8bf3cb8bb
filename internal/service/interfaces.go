package service

import (
	"context"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
)

// ResetPrompt is the question asked before the daily checklist is cleared.
const ResetPrompt = "Start a new day? This will uncheck all daily tasks and add-ons."

// Persisted keys.
const (
	KeyTheme   = "gate_tracker_theme"
	KeyDate    = "gate_tracker_date"
	KeyTopics  = "gate_tracker_topics"
	KeyRoutine = "gate_tracker_routine"
	KeyAddOns  = "gate_tracker_addons"
)

// ProgressService owns the user's progress: focus date, completion sets and
// theme. Mutations persist before they return. Persistence failures are
// reported to the observer, not to the caller.
type ProgressService interface {
	Catalog() *catalog.Catalog

	FocusDate() domain.Day
	ThemeMode() domain.ThemeMode
	ActiveEntry() (*domain.ScheduleEntry, bool)
	CompletedTaskIDs() []string
	CompletedRoutineIDs() []string
	CompletedAddOnIDs() []string
	IsTaskDone(id string) bool
	IsRoutineDone(id string) bool
	IsAddOnDone(id string) bool
	Summary() contract.ProgressSummary

	ToggleTask(ctx context.Context, taskID string) bool
	ToggleRoutineItem(ctx context.Context, id string) bool
	ToggleAddOn(ctx context.Context, id string) bool
	SetFocusDate(ctx context.Context, day domain.Day)
	SetFocusDateString(ctx context.Context, s string) error
	ShiftFocusDate(ctx context.Context, deltaDays int) domain.Day
	ResetDailyChecklist(ctx context.Context, confirmer Confirmer) bool
	SetThemeMode(ctx context.Context, mode domain.ThemeMode)
	ToggleThemeMode(ctx context.Context) domain.ThemeMode
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}

type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

// ThemeProbe reports the host's color scheme preference.
type ThemeProbe interface {
	IsSystemDarkMode() bool
}

type ThemeProbeFunc func() bool

func (f ThemeProbeFunc) IsSystemDarkMode() bool { return f() }
