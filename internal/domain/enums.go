package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidThemeMode = errors.New("invalid theme mode")

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode accepts "dark" or "light" in any case.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("%w: %q (expected dark or light)", ErrInvalidThemeMode, s)
}

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (m ThemeMode) IsDark() bool { return m == ThemeDark }

type RoutineCategory string

const (
	CategoryMorning RoutineCategory = "Morning"
	CategoryMidDay  RoutineCategory = "Mid-Day"
	CategoryEvening RoutineCategory = "Evening"
	CategoryNight   RoutineCategory = "Night"
)

// RoutineCategories lists the categories in display order.
var RoutineCategories = []RoutineCategory{
	CategoryMorning,
	CategoryMidDay,
	CategoryEvening,
	CategoryNight,
}

// ValidRoutineCategories is the canonical set of accepted category strings.
var ValidRoutineCategories = map[string]bool{
	"Morning": true, "Mid-Day": true, "Evening": true, "Night": true,
}
