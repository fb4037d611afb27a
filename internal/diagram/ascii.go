package diagram

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gocs25/internal/geom"
)

const (
	planformColumns = 48
	planformRows    = 16
)

// DrawASCIIPlanform creates an ASCII sketch of a half planform, span along
// columns and chord along rows (leading edge at top).
func DrawASCIIPlanform(s *geom.LiftingSurface) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	first := s.Sections[0].PlanformPosition.Y
	last := s.Sections[len(s.Sections)-1].PlanformPosition.Y
	span := last - first
	if span <= 0 {
		return "", errors.New("planform has no span")
	}

	// Streamwise extent
	xMin, xMax := math.Inf(1), math.Inf(-1)
	for _, p := range s.Sections {
		xMin = math.Min(xMin, p.PlanformPosition.X)
		xMax = math.Max(xMax, p.PlanformPosition.X+p.ChordLength)
	}
	if xMax <= xMin {
		return "", errors.New("planform has no chord")
	}
	row := func(x float64) int {
		i := int(math.Round((x - xMin) / (xMax - xMin) * float64(planformRows-1)))
		return min(max(i, 0), planformRows-1)
	}

	grid := make([][]rune, planformRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", planformColumns))
	}

	for j := 0; j < planformColumns; j++ {
		y := first + span*(float64(j)+0.5)/planformColumns
		le, err := s.LeadingEdgeAt(y)
		if err != nil {
			return "", err
		}
		chord, err := s.ChordAt(y)
		if err != nil {
			return "", err
		}

		top, bottom := row(le), row(le+chord)
		for i := top; i <= bottom; i++ {
			grid[i][j] = '░'
		}
		grid[top][j] = '█'
		grid[bottom][j] = '█'
	}

	// Section stations
	for _, p := range s.Sections[1 : len(s.Sections)-1] {
		j := int((p.PlanformPosition.Y - first) / span * planformColumns)
		if j >= planformColumns {
			j = planformColumns - 1
		}
		for i := row(p.PlanformPosition.X) + 1; i < row(p.PlanformPosition.X+p.ChordLength); i++ {
			grid[i][j] = '│'
		}
	}

	// MAC
	if s.ReferenceLength > 0 {
		j := int((s.MACPosition.Y - first) / span * planformColumns)
		if j >= 0 && j < planformColumns {
			for i := row(s.MACPosition.X); i <= row(s.MACPosition.X+s.ReferenceLength); i++ {
				grid[i][j] = '┃'
			}
		}
	}

	var sb strings.Builder
	title := "HALF PLANFORM"
	if s.Name != "" {
		title = strings.ToUpper(s.Name) + " " + title
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", title))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(title))))
	sb.WriteString(fmt.Sprintf("  x = %.2f m\n", xMin))
	for i := range grid {
		sb.WriteString(fmt.Sprintf("  │%s\n", string(grid[i])))
	}
	sb.WriteString(fmt.Sprintf("  x = %.2f m\n", xMax))
	sb.WriteString(fmt.Sprintf("  └%s\n", strings.Repeat("─", planformColumns)))

	left := fmt.Sprintf("y = %.2f m", first)
	right := fmt.Sprintf("y = %.2f m", last)
	pad := planformColumns + 1 - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	sb.WriteString(fmt.Sprintf("  %s%s%s\n", left, strings.Repeat(" ", pad), right))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Leading and trailing edges\n")
	sb.WriteString("  │   = Section (kink)\n")
	if s.ReferenceLength > 0 {
		sb.WriteString(fmt.Sprintf("  ┃   = MAC, %.3f m at y = %.3f m\n", s.ReferenceLength, s.MACPosition.Y))
	}

	return sb.String(), nil
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
