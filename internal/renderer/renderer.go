package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dsouzarc/incast/internal/models"
)

// Renderer turns a priority summary into terminal output. Implementations
// are pure views: same summary in, same string out.
type Renderer interface {
	Name() string
	Render(summary models.PrioritySummary, width int) string
}

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

const minBarWidth = 10

// BarChart renders one horizontal bar per priority label, scaled to the
// largest count.
type BarChart struct{}

func (BarChart) Name() string { return "chart" }

func (BarChart) Render(summary models.PrioritySummary, width int) string {
	if len(summary) == 0 {
		return emptyStyle.Render("no predictions")
	}

	labelWidth := 0
	var max float64
	for _, pc := range summary {
		if len(pc.Label) > labelWidth {
			labelWidth = len(pc.Label)
		}
		if pc.Count > max {
			max = pc.Count
		}
	}

	// Room for "<label>  <bar>  <count>"
	barWidth := width - labelWidth - 12
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	for i, pc := range summary {
		if i > 0 {
			b.WriteByte('\n')
		}
		filled := 0
		if max > 0 {
			filled = int(pc.Count / max * float64(barWidth))
		}
		if pc.Count > 0 && filled == 0 {
			filled = 1
		}
		fmt.Fprintf(&b, "%s  %s  %s",
			labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, pc.Label)),
			barStyle.Render(strings.Repeat("█", filled)+strings.Repeat("░", barWidth-filled)),
			countStyle.Render(formatCount(pc.Count)),
		)
	}
	return b.String()
}

// List renders aligned label/count rows with a trailing total.
type List struct{}

func (List) Name() string { return "list" }

func (List) Render(summary models.PrioritySummary, width int) string {
	if len(summary) == 0 {
		return emptyStyle.Render("no predictions")
	}

	labelWidth := 0
	for _, pc := range summary {
		if len(pc.Label) > labelWidth {
			labelWidth = len(pc.Label)
		}
	}

	var b strings.Builder
	for _, pc := range summary {
		fmt.Fprintf(&b, "%s  %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, pc.Label)),
			countStyle.Render(formatCount(pc.Count)),
		)
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("%-*s  %s", labelWidth, "total", formatCount(summary.Total()))))
	return b.String()
}

// ByName resolves a renderer for the CLI flags; the chart is the default.
func ByName(name string) (Renderer, error) {
	switch name {
	case "chart", "":
		return BarChart{}, nil
	case "list":
		return List{}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want chart or list)", name)
	}
}

func formatCount(c float64) string {
	if c == float64(int64(c)) {
		return fmt.Sprintf("%d", int64(c))
	}
	return fmt.Sprintf("%.2f", c)
}
