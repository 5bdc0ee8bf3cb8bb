package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/alexanderramin/gatetrack/internal/repository"
	"github.com/alexanderramin/gatetrack/internal/scheduler"
)

type progressService struct {
	catalog  *catalog.Catalog
	kv       repository.KVStore
	probe    ThemeProbe
	observer UseCaseObserver

	mu      sync.Mutex
	focus   domain.Day
	tasks   domain.CompletionSet
	routine domain.CompletionSet
	addOns  domain.CompletionSet
	theme   domain.ThemeMode
}

// Option configures a ProgressService.
type Option func(*progressService)

// WithThemeProbe sets the probe consulted when no theme is stored.
func WithThemeProbe(p ThemeProbe) Option {
	return func(s *progressService) { s.probe = p }
}

func WithObserver(o UseCaseObserver) Option {
	return func(s *progressService) { s.observer = useCaseObserverOrNoop([]UseCaseObserver{o}) }
}

// NewProgressService loads state from kv. Absent, unreadable or malformed
// values fall back to defaults; construction never fails.
func NewProgressService(ctx context.Context, c *catalog.Catalog, kv repository.KVStore, opts ...Option) ProgressService {
	s := &progressService{
		catalog:  c,
		kv:       kv,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *progressService) load(ctx context.Context) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}

	s.focus = s.defaultFocus()
	if raw, ok := s.read(ctx, KeyDate); ok {
		if d, err := domain.ParseDay(raw); err == nil {
			s.focus = d
		} else {
			s.reportMalformed(ctx, KeyDate, err)
		}
	}

	s.tasks = s.readSet(ctx, KeyTopics)
	s.routine = s.readSet(ctx, KeyRoutine)
	s.addOns = s.readSet(ctx, KeyAddOns)

	s.theme = ""
	if raw, ok := s.read(ctx, KeyTheme); ok {
		if m, err := domain.ParseThemeMode(raw); err == nil {
			s.theme = m
		} else {
			s.reportMalformed(ctx, KeyTheme, err)
		}
	}
	if s.theme == "" {
		s.theme = s.probedTheme()
		fields["theme_source"] = "probe"
	}

	fields["focus_date"] = s.focus.String()
	fields["tasks"] = s.tasks.Len()
	fields["routine"] = s.routine.Len()
	fields["addons"] = s.addOns.Len()
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "load-progress",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields:    fields,
	})
}

func (s *progressService) defaultFocus() domain.Day {
	if d := s.catalog.DefaultFocusDay(); !d.IsZero() {
		return d
	}
	return domain.Today()
}

func (s *progressService) probedTheme() domain.ThemeMode {
	if s.probe != nil && s.probe.IsSystemDarkMode() {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

// read returns the stored value for key. Absent keys are silent; read
// errors are reported and treated as absent.
func (s *progressService) read(ctx context.Context, key string) (string, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.observer.ObserveUseCase(ctx, UseCaseEvent{
				Name:      "read-progress",
				StartedAt: time.Now().UTC(),
				Err:       fmt.Errorf("reading %s: %w", key, err),
				Fields:    map[string]any{"key": key},
			})
		}
		return "", false
	}
	return raw, true
}

func (s *progressService) readSet(ctx context.Context, key string) domain.CompletionSet {
	raw, ok := s.read(ctx, key)
	if !ok {
		return domain.NewCompletionSet()
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.reportMalformed(ctx, key, err)
		return domain.NewCompletionSet()
	}
	return domain.NewCompletionSet(ids...)
}

func (s *progressService) reportMalformed(ctx context.Context, key string, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "read-progress",
		StartedAt: time.Now().UTC(),
		Err:       fmt.Errorf("malformed value for %s, using default: %w", key, err),
		Fields:    map[string]any{"key": key},
	})
}

// persist writes entries and reports the outcome. Callers hold s.mu.
func (s *progressService) persist(ctx context.Context, useCase string, fields map[string]any, entries ...repository.Entry) {
	startedAt := time.Now().UTC()
	var err error
	if len(entries) == 1 {
		err = s.kv.Set(ctx, entries[0].Key, entries[0].Value)
	} else {
		err = s.kv.SetMany(ctx, entries)
	}
	if err != nil {
		err = fmt.Errorf("persisting %s: %w", useCase, err)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      useCase,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func setEntry(key string, set domain.CompletionSet) repository.Entry {
	data, _ := json.Marshal(set.IDs())
	return repository.Entry{Key: key, Value: string(data)}
}

func (s *progressService) toggle(ctx context.Context, useCase, key string, set *domain.CompletionSet, id string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	done := set.Toggle(id)
	s.persist(ctx, useCase, map[string]any{"id": id, "done": done}, setEntry(key, *set))
	return done
}

func (s *progressService) ToggleTask(ctx context.Context, taskID string) bool {
	return s.toggle(ctx, "toggle-task", KeyTopics, &s.tasks, taskID)
}

func (s *progressService) ToggleRoutineItem(ctx context.Context, id string) bool {
	return s.toggle(ctx, "toggle-routine", KeyRoutine, &s.routine, id)
}

func (s *progressService) ToggleAddOn(ctx context.Context, id string) bool {
	return s.toggle(ctx, "toggle-addon", KeyAddOns, &s.addOns, id)
}

func (s *progressService) SetFocusDate(ctx context.Context, day domain.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setFocusLocked(ctx, "set-focus-date", day)
}

func (s *progressService) setFocusLocked(ctx context.Context, useCase string, day domain.Day) {
	s.focus = day
	s.persist(ctx, useCase, map[string]any{"focus_date": day.String()},
		repository.Entry{Key: KeyDate, Value: day.String()})
}

func (s *progressService) SetFocusDateString(ctx context.Context, str string) error {
	day, err := domain.ParseDay(str)
	if err != nil {
		return err
	}
	s.SetFocusDate(ctx, day)
	return nil
}

func (s *progressService) ShiftFocusDate(ctx context.Context, deltaDays int) domain.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.focus.AddDays(deltaDays)
	s.setFocusLocked(ctx, "shift-focus-date", next)
	return next
}

func (s *progressService) ResetDailyChecklist(ctx context.Context, confirmer Confirmer) bool {
	if confirmer == nil || !confirmer.Confirm(ResetPrompt) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := map[string]any{"routine": s.routine.Len(), "addons": s.addOns.Len()}
	s.routine.Clear()
	s.addOns.Clear()
	s.persist(ctx, "reset-daily-checklist", cleared,
		setEntry(KeyRoutine, s.routine),
		setEntry(KeyAddOns, s.addOns),
	)
	return true
}

func (s *progressService) SetThemeMode(ctx context.Context, mode domain.ThemeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setThemeLocked(ctx, mode)
}

func (s *progressService) ToggleThemeMode(ctx context.Context) domain.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.theme.Toggle()
	s.setThemeLocked(ctx, next)
	return next
}

func (s *progressService) setThemeLocked(ctx context.Context, mode domain.ThemeMode) {
	s.theme = mode
	s.persist(ctx, "set-theme", map[string]any{"theme": string(mode)},
		repository.Entry{Key: KeyTheme, Value: string(mode)})
}

func (s *progressService) Catalog() *catalog.Catalog { return s.catalog }

func (s *progressService) FocusDate() domain.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

func (s *progressService) ThemeMode() domain.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *progressService) ActiveEntry() (*domain.ScheduleEntry, bool) {
	return scheduler.ResolveIn(s.FocusDate(), s.catalog)
}

func (s *progressService) CompletedTaskIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.IDs()
}

func (s *progressService) CompletedRoutineIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routine.IDs()
}

func (s *progressService) CompletedAddOnIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addOns.IDs()
}

func (s *progressService) IsTaskDone(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Contains(id)
}

func (s *progressService) IsRoutineDone(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routine.Contains(id)
}

func (s *progressService) IsAddOnDone(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addOns.Contains(id)
}

func (s *progressService) Summary() contract.ProgressSummary {
	s.mu.Lock()
	snap := contract.Snapshot{
		FocusDate: s.focus,
		Tasks:     domain.NewCompletionSet(s.tasks.IDs()...),
		Routine:   domain.NewCompletionSet(s.routine.IDs()...),
		AddOns:    domain.NewCompletionSet(s.addOns.IDs()...),
		Theme:     s.theme,
	}
	s.mu.Unlock()
	return contract.Summarize(s.catalog, snap)
}
