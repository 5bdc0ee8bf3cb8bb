package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a plan file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown plan format %q (expected yaml or json)", s)
}

// FormatForPath picks the format from the file extension. Anything that is
// not .json is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// PlanSchema is the top-level structure of a plan file.
type PlanSchema struct {
	Name    string          `json:"name" yaml:"name"`
	Season  SeasonImport    `json:"season" yaml:"season"`
	Entries []EntryImport   `json:"entries" yaml:"entries"`
	Routine []RoutineImport `json:"routine" yaml:"routine"`
	AddOns  []AddOnImport   `json:"addons,omitempty" yaml:"addons,omitempty"`
	Tips    []TipImport     `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// SeasonImport anchors "3 Dec" style dates to calendar years.
type SeasonImport struct {
	StartYear  int `json:"start_year" yaml:"start_year"`
	StartMonth int `json:"start_month" yaml:"start_month"`
}

type EntryImport struct {
	ID        string   `json:"id" yaml:"id"`
	Phase     int      `json:"phase" yaml:"phase"`
	DateRange string   `json:"date_range" yaml:"date_range"`
	Subject   string   `json:"subject" yaml:"subject"`
	Focus     string   `json:"focus,omitempty" yaml:"focus,omitempty"`
	Tasks     []string `json:"tasks" yaml:"tasks"`
	IsTestDay *bool    `json:"is_test_day,omitempty" yaml:"is_test_day,omitempty"`
}

type RoutineImport struct {
	ID       string  `json:"id" yaml:"id"`
	Time     string  `json:"time" yaml:"time"`
	Task     string  `json:"task" yaml:"task"`
	Category string  `json:"category" yaml:"category"`
	Duration float64 `json:"duration" yaml:"duration"`
	Details  *string `json:"details,omitempty" yaml:"details,omitempty"`
	// Display overrides for days with and without an active entry.
	SubjectTask  *string `json:"subject_task,omitempty" yaml:"subject_task,omitempty"`
	FallbackTask *string `json:"fallback_task,omitempty" yaml:"fallback_task,omitempty"`
}

type AddOnImport struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Icon  *string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type TipImport struct {
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	Highlight *bool  `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

// ParsePlan decodes a plan in the given format.
func ParsePlan(data []byte, format Format) (*PlanSchema, error) {
	var schema PlanSchema
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &schema)
	default:
		err = yaml.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}

// LoadPlanSchema reads and parses a plan file, choosing the format by extension.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data, FormatForPath(path))
}

// Marshal encodes a plan. JSON output is indented.
func Marshal(schema *PlanSchema, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding plan as json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("encoding plan as yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown plan format %q", format)
}
