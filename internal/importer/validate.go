package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gatetrack/internal/domain"
)

// ValidatePlan checks a plan file before conversion. It returns every
// problem found, not just the first.
func ValidatePlan(schema *PlanSchema) []error {
	var errs []error

	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	season, seasonErrs := validateSeason(schema.Season)
	errs = append(errs, seasonErrs...)
	errs = append(errs, validateEntries(schema.Entries, season)...)
	errs = append(errs, validateRoutine(schema.Routine)...)
	errs = append(errs, validateAddOns(schema.AddOns)...)
	errs = append(errs, validateTips(schema.Tips)...)

	return errs
}

// validateSeason returns nil when the season cannot anchor dates, so
// range checks that need calendar days are skipped.
func validateSeason(s SeasonImport) (*domain.Season, []error) {
	season := domain.Season{StartYear: s.StartYear, StartMonth: time.Month(s.StartMonth)}
	if err := season.Validate(); err != nil {
		return nil, []error{fmt.Errorf("season: %w", err)}
	}
	return &season, nil
}

func validateEntries(entries []EntryImport, season *domain.Season) []error {
	var errs []error
	if len(entries) == 0 {
		errs = append(errs, fmt.Errorf("entries: at least one schedule entry is required"))
	}

	seen := make(map[string]bool)
	var prevEnd domain.Day
	var prevID string
	for i, e := range entries {
		prefix := fmt.Sprintf("entries[%d]", i)
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, e.ID))
		}
		seen[e.ID] = true

		if e.Phase < 1 {
			errs = append(errs, fmt.Errorf("%s.phase must be at least 1, got %d", prefix, e.Phase))
		}
		if e.Subject == "" {
			errs = append(errs, fmt.Errorf("%s.subject is required", prefix))
		}
		for j, task := range e.Tasks {
			if task == "" {
				errs = append(errs, fmt.Errorf("%s.tasks[%d] must not be empty", prefix, j))
			}
		}

		if e.DateRange == "" {
			errs = append(errs, fmt.Errorf("%s.date_range is required", prefix))
			prevEnd = domain.Day{}
			continue
		}
		r, err := domain.ParseDateRange(e.DateRange)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.date_range: %w", prefix, err))
			prevEnd = domain.Day{}
			continue
		}
		if season == nil {
			continue
		}
		start, end, err := season.BoundsStrict(r)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.date_range: %w", prefix, err))
			prevEnd = domain.Day{}
			continue
		}
		if end.Before(start) {
			errs = append(errs, fmt.Errorf("%s.date_range %q ends before it starts", prefix, e.DateRange))
		}
		if !prevEnd.IsZero() {
			switch want := prevEnd.AddDays(1); {
			case start.Before(want):
				errs = append(errs, fmt.Errorf("%s.date_range %q overlaps %s (ends %s)", prefix, e.DateRange, prevID, prevEnd))
			case start.After(want):
				errs = append(errs, fmt.Errorf("%s.date_range %q leaves a gap after %s (ends %s)", prefix, e.DateRange, prevID, prevEnd))
			}
		}
		prevEnd, prevID = end, e.ID
	}
	return errs
}

func validateRoutine(items []RoutineImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, r := range items {
		prefix := fmt.Sprintf("routine[%d]", i)
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[r.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, r.ID))
		}
		seen[r.ID] = true

		if r.Task == "" {
			errs = append(errs, fmt.Errorf("%s.task is required", prefix))
		}
		if r.SubjectTask != nil && *r.SubjectTask == "" {
			errs = append(errs, fmt.Errorf("%s.subject_task must not be empty when set", prefix))
		}
		if r.FallbackTask != nil && *r.FallbackTask == "" {
			errs = append(errs, fmt.Errorf("%s.fallback_task must not be empty when set", prefix))
		}
		if !domain.ValidRoutineCategories[r.Category] {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, r.Category))
		}
		if r.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be positive", prefix))
		}
	}
	return errs
}

func validateAddOns(addOns []AddOnImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, a := range addOns {
		prefix := fmt.Sprintf("addons[%d]", i)
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, a.ID))
		}
		seen[a.ID] = true
		if a.Label == "" {
			errs = append(errs, fmt.Errorf("%s.label is required", prefix))
		}
	}
	return errs
}

func validateTips(tips []TipImport) []error {
	var errs []error
	for i, t := range tips {
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("tips[%d].title is required", i))
		}
		if t.Content == "" {
			errs = append(errs, fmt.Errorf("tips[%d].content is required", i))
		}
	}
	return errs
}
