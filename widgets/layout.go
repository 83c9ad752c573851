package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// HStack lays widgets side by side. Ratios split the width like CSS
// fractional grid columns: {2, 1} gives the first widget two thirds. With
// no ratios (or a mismatched count) the split is even.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := SplitSpans(max(1, width-gapTotal), len(h.Widgets), h.Ratios)
	cells := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		cells[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		if len(cells[i]) > rows {
			rows = len(cells[i])
		}
	}
	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		cols := make([]string, len(cells))
		for i := range cells {
			if row < len(cells[i]) {
				cols[i] = padRight(cells[i][row], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, gap))
	}
	return strings.Join(out, "\n")
}

// VStack stacks widgets top to bottom with optional blank lines between.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := SplitSpans(max(1, height-spacingTotal), len(v.Widgets), nil)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		lines = append(lines, w.Render(width, max(1, heights[i])))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// SplitSpans divides total cells across n slots. Leftover cells from
// rounding go to the leftmost slots so the sum always equals total.
func SplitSpans(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		span := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = span
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		span := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = span
		used += span
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
