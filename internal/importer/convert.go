package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/domain"
)

// ToCatalog converts a plan into a catalog. Call ValidatePlan first;
// ToCatalog only rejects what would make the catalog unusable.
func ToCatalog(schema *PlanSchema) (*catalog.Catalog, error) {
	season := domain.Season{StartYear: schema.Season.StartYear, StartMonth: time.Month(schema.Season.StartMonth)}
	if err := season.Validate(); err != nil {
		return nil, fmt.Errorf("converting plan %q: %w", schema.Name, err)
	}

	entries := make([]domain.ScheduleEntry, 0, len(schema.Entries))
	for _, e := range schema.Entries {
		entries = append(entries, domain.ScheduleEntry{
			ID:        e.ID,
			Phase:     e.Phase,
			DateRange: e.DateRange,
			Subject:   e.Subject,
			Focus:     e.Focus,
			Tasks:     append([]string(nil), e.Tasks...),
			IsTestDay: e.IsTestDay,
		})
	}

	routine := make([]domain.RoutineItem, 0, len(schema.Routine))
	for _, r := range schema.Routine {
		routine = append(routine, domain.RoutineItem{
			ID:       r.ID,
			Time:     r.Time,
			Task:     r.Task,
			Category: domain.RoutineCategory(r.Category),
			Duration: r.Duration,
			Details:  r.Details,

			SubjectTask:  r.SubjectTask,
			FallbackTask: r.FallbackTask,
		})
	}

	addOns := make([]domain.AddOn, 0, len(schema.AddOns))
	for _, a := range schema.AddOns {
		addOns = append(addOns, domain.AddOn{ID: a.ID, Label: a.Label, Icon: a.Icon})
	}

	tips := make([]domain.Tip, 0, len(schema.Tips))
	for _, t := range schema.Tips {
		tips = append(tips, domain.Tip{Title: t.Title, Content: t.Content, Highlight: t.Highlight})
	}

	return catalog.New(schema.Name, season, entries, routine, addOns, tips), nil
}

// FromCatalog is the inverse of ToCatalog.
func FromCatalog(c *catalog.Catalog) *PlanSchema {
	schema := &PlanSchema{
		Name:   c.Name,
		Season: SeasonImport{StartYear: c.Season.StartYear, StartMonth: int(c.Season.StartMonth)},
	}
	for _, e := range c.Entries() {
		schema.Entries = append(schema.Entries, EntryImport{
			ID:        e.ID,
			Phase:     e.Phase,
			DateRange: e.DateRange,
			Subject:   e.Subject,
			Focus:     e.Focus,
			Tasks:     e.Tasks,
			IsTestDay: e.IsTestDay,
		})
	}
	for _, r := range c.Routine() {
		schema.Routine = append(schema.Routine, RoutineImport{
			ID:       r.ID,
			Time:     r.Time,
			Task:     r.Task,
			Category: string(r.Category),
			Duration: r.Duration,
			Details:  r.Details,

			SubjectTask:  r.SubjectTask,
			FallbackTask: r.FallbackTask,
		})
	}
	for _, a := range c.AddOns() {
		schema.AddOns = append(schema.AddOns, AddOnImport{ID: a.ID, Label: a.Label, Icon: a.Icon})
	}
	for _, t := range c.Tips() {
		schema.Tips = append(schema.Tips, TipImport{Title: t.Title, Content: t.Content, Highlight: t.Highlight})
	}
	return schema
}

// LoadCatalog reads, validates and converts a plan file. Validation
// problems are joined into one error.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	schema, err := LoadPlanSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading plan %s: %w", path, err)
	}
	if errs := ValidatePlan(schema); len(errs) > 0 {
		return nil, fmt.Errorf("plan %s is invalid: %w", path, errors.Join(errs...))
	}
	return ToCatalog(schema)
}
