package formatter

import (
	"strings"

	"github.com/alexanderramin/gatetrack/internal/domain"
)

// FormatTips renders the tips list. Highlighted tips get a star.
func FormatTips(tips []domain.Tip) string {
	if len(tips) == 0 {
		return Dim("No tips in this plan.") + "\n"
	}
	var b strings.Builder
	for i, t := range tips {
		if i > 0 {
			b.WriteString("\n")
		}
		title := Bold(t.Title)
		if t.Highlighted() {
			title = StyleYellow.Render("★ ") + StyleHeader.Render(t.Title)
		}
		b.WriteString(title + "\n")
		b.WriteString("  " + StyleFg.Render(t.Content) + "\n")
	}
	return RenderBox("Topper Tips", strings.TrimRight(b.String(), "\n"))
}
