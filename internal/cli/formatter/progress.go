package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%. pct is a fraction in
// [0, 1]; the bar is red below a third, yellow below two thirds, else green.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width), clampFraction(pct)*100)
}

// RenderPercent renders an integer percentage with RenderProgress.
func RenderPercent(percent, width int) string {
	return RenderProgress(float64(percent)/100, width)
}

// RenderCompactBar renders only the colored blocks.
func RenderCompactBar(pct float64, width int) string {
	pct = clampFraction(pct)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return style.Render(bar)
}

func clampFraction(pct float64) float64 {
	return max(0, min(1, pct))
}
