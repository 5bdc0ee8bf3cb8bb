package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is one color scheme.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Gruvbox dark and light variants.
var (
	DarkPalette = Palette{
		Green:  lipgloss.Color("#8ec07c"),
		Yellow: lipgloss.Color("#fabd2f"),
		Red:    lipgloss.Color("#fb4934"),
		Blue:   lipgloss.Color("#83a598"),
		Purple: lipgloss.Color("#d3869b"),
		Dim:    lipgloss.Color("#928374"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Header: lipgloss.Color("#fe8019"),
	}
	LightPalette = Palette{
		Green:  lipgloss.Color("#427b58"),
		Yellow: lipgloss.Color("#b57614"),
		Red:    lipgloss.Color("#9d0006"),
		Blue:   lipgloss.Color("#076678"),
		Purple: lipgloss.Color("#8f3f71"),
		Dim:    lipgloss.Color("#7c6f64"),
		Fg:     lipgloss.Color("#3c3836"),
		Header: lipgloss.Color("#af3a03"),
	}
)

// Active colors and styles. SetTheme swaps them.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color

	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var currentTheme domain.ThemeMode

func init() {
	SetTheme(domain.ThemeDark)
}

// SetTheme selects the palette for all subsequent rendering.
func SetTheme(mode domain.ThemeMode) {
	p := LightPalette
	if mode.IsDark() {
		p = DarkPalette
	}
	currentTheme = mode
	applyPalette(p)
}

// CurrentTheme returns the mode last passed to SetTheme.
func CurrentTheme() domain.ThemeMode {
	return currentTheme
}

func applyPalette(p Palette) {
	ColorGreen, ColorYellow, ColorRed, ColorBlue = p.Green, p.Yellow, p.Red, p.Blue
	ColorPurple, ColorDim, ColorFg, ColorHeader = p.Purple, p.Dim, p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// CategoryStyle colors a routine category.
func CategoryStyle(cat domain.RoutineCategory) lipgloss.Style {
	switch cat {
	case domain.CategoryMorning:
		return StyleYellow
	case domain.CategoryMidDay:
		return StyleGreen
	case domain.CategoryEvening:
		return StylePurple
	case domain.CategoryNight:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PhaseLabel renders "PHASE N" in the header color.
func PhaseLabel(phase int) string {
	return StyleHeader.Render(fmt.Sprintf("PHASE %d", phase))
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
