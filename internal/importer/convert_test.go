package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniYAML = `
name: Mini GATE
season:
  start_year: 2025
  start_month: 11
entries:
  - id: p1-c
    phase: 1
    date_range: 29 Nov - 2 Dec
    subject: C Programming
    focus: Fast mode
    tasks:
      - Pointers
      - Arrays & Strings
  - id: p1-test
    phase: 1
    date_range: 3 Dec - 3 Dec
    subject: Small Test
    is_test_day: true
    tasks:
      - Test 1
routine:
  - id: dr-1
    time: 5:30 - 7:30 AM
    task: Main Subject (Core Study)
    category: Morning
    duration: 2
    details: Toughest chapter first
    fallback_task: Study Session (General)
addons:
  - id: da-1
    label: Drink water
    icon: "💧"
tips:
  - title: Consistency
    content: Show up daily.
    highlight: true
`

func TestParsePlan_YAML(t *testing.T) {
	schema, err := ParsePlan([]byte(miniYAML), FormatYAML)
	require.NoError(t, err)
	require.Empty(t, ValidatePlan(schema))

	c, err := ToCatalog(schema)
	require.NoError(t, err)

	assert.Equal(t, "Mini GATE", c.Name)
	assert.Equal(t, 3, c.TotalTasks())
	assert.Equal(t, "2025-11-29", c.StartDay().String())
	assert.Equal(t, "2025-12-03", c.EndDay().String())

	e, ok := c.EntryByID("p1-test")
	require.True(t, ok)
	assert.True(t, e.TestDay())

	routine := c.Routine()
	require.Len(t, routine, 1)
	assert.Equal(t, domain.CategoryMorning, routine[0].Category)
	assert.Equal(t, "Toughest chapter first", domain.StrFromPtr(routine[0].Details))
	assert.Equal(t, "Study Session (General)", routine[0].DisplayTask(""))
	assert.Equal(t, "C Programming (Core Study)", routine[0].DisplayTask("C Programming"))
	assert.Equal(t, "💧", domain.StrFromPtr(c.AddOns()[0].Icon))
	assert.True(t, c.Tips()[0].Highlighted())
}

func TestParsePlan_BadInput(t *testing.T) {
	_, err := ParsePlan([]byte("entries: [unterminated"), FormatYAML)
	assert.Error(t, err)

	_, err = ParsePlan([]byte(`{"name": 5}`), FormatJSON)
	assert.Error(t, err)
}

func TestGATEPlan_ExportsAsValidPlan(t *testing.T) {
	schema := FromCatalog(catalog.GATE())
	assert.Empty(t, ValidatePlan(schema))
	assert.Len(t, schema.Entries, 15)
	assert.Len(t, schema.Routine, 11)
	assert.Len(t, schema.AddOns, 5)
	assert.Len(t, schema.Tips, 5)
	assert.Equal(t, 2025, schema.Season.StartYear)
	assert.Equal(t, 11, schema.Season.StartMonth)
}

func TestGATEPlan_SurvivesExportAndReimport(t *testing.T) {
	plan := catalog.GATE()

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(FromCatalog(plan), format)
			require.NoError(t, err)

			schema, err := ParsePlan(data, format)
			require.NoError(t, err)
			require.Empty(t, ValidatePlan(schema))

			c, err := ToCatalog(schema)
			require.NoError(t, err)
			assert.Equal(t, plan.Entries(), c.Entries())
			assert.Equal(t, plan.Routine(), c.Routine())
			assert.Equal(t, plan.AddOns(), c.AddOns())
			assert.Equal(t, plan.Tips(), c.Tips())
			assert.Equal(t, plan.Season, c.Season)
		})
	}
}

func TestToCatalog_RejectsBadSeason(t *testing.T) {
	p := validMinimalPlan()
	p.Season.StartYear = 0
	_, err := ToCatalog(p)
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(good, []byte(miniYAML), 0o644))
	c, err := LoadCatalog(good)
	require.NoError(t, err)
	assert.Equal(t, "Mini GATE", c.Name)

	bad := filepath.Join(dir, "plan.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"season":{"start_year":2025,"start_month":11},"entries":[]}`), 0o644))
	_, err = LoadCatalog(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "at least one schedule entry")

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)

	assert.Equal(t, FormatJSON, FormatForPath("x/PLAN.JSON"))
	assert.Equal(t, FormatYAML, FormatForPath("plan.yml"))
}
