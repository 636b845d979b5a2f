package widgets

import (
	"math"
	"strings"
)

// Widget is anything that can draw itself into a width x height cell.
type Widget interface {
	Render(width, height int) string
}

// VStack stacks widgets top to bottom, splitting the height evenly unless
// Ratios says otherwise. Gap inserts blank lines between neighbours.
type VStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gaps := max(0, v.Gap*(len(v.Widgets)-1))
	heights := divide(max(1, height-gaps), len(v.Widgets), v.Ratios)
	parts := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		parts = append(parts, w.Render(width, max(1, heights[i])))
		if i < len(v.Widgets)-1 {
			for g := 0; g < v.Gap; g++ {
				parts = append(parts, "")
			}
		}
	}
	return strings.Join(parts, "\n")
}

// HStack lays widgets out side by side. Every row is padded to its column
// width so the joined lines stay aligned.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gaps := max(0, h.Gap*(len(h.Widgets)-1))
	widths := divide(max(1, width-gaps), len(h.Widgets), h.Ratios)
	cols := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		cols[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rows = max(rows, len(cols[i]))
	}
	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, rows)
	for r := range out {
		cells := make([]string, len(cols))
		for i := range cols {
			if r < len(cols[i]) {
				cells[i] = padTo(cols[i][r], widths[i])
			} else {
				cells[i] = strings.Repeat(" ", widths[i])
			}
		}
		out[r] = strings.Join(cells, gap)
	}
	return strings.Join(out, "\n")
}

// divide splits total into n parts, proportional to ratios when one is given
// per part. Leftover cells go to the leading parts.
func divide(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	// non-positive ratios count as 1 so widths never go negative
	rs := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		rs[i] = r
		sum += r
	}
	used := 0
	for i := range out {
		w := int(math.Floor((rs[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}
