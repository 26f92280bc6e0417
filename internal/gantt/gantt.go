// Package gantt draws a text Gantt chart of task snapshots: one bar per task
// from its start to its deadline, colored by category, over a time axis
// whose tick spacing follows the visible range.
package gantt

import (
	"fmt"
	"io"
	"math/bits"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasktide/tasktide/pkg/planner"
)

// LabelLayout formats axis labels.
const LabelLayout = "Jan 02, 15:04"

const (
	DefaultWidth = 60
	maxNameWidth = 20

	barRune  = '█'
	tickRune = '┬'
)

// Category colors.
var (
	AcademicColor = lipgloss.Color("#87CEEB")
	PersonalColor = lipgloss.Color("#90EE90")
)

// Options tune the rendering.
type Options struct {
	// Width is the number of columns of the time axis.
	Width int
	// Color enables category colors when the writer supports them.
	Color bool
}

// TickInterval returns the axis tick spacing for a visible range.
func TickInterval(span time.Duration) time.Duration {
	switch {
	case span > 7*24*time.Hour:
		return 5 * time.Hour
	case span > 24*time.Hour:
		return 3 * time.Hour
	case span > 6*time.Hour:
		return time.Hour
	default:
		return 30 * time.Minute
	}
}

// Render writes the chart for rows to w. Rows are drawn in the order given.
func Render(w io.Writer, rows []planner.GanttRow, opts Options) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No tasks to display.")
		return err
	}
	width := opts.Width
	if width <= 1 {
		width = DefaultWidth
	}

	c := newChart(rows, width)
	styles := newStyles(w, opts.Color)

	var b strings.Builder
	fmt.Fprintf(&b, "Task Timeline: %s to %s (ticks every %s)\n",
		c.from.Format(LabelLayout), c.to.Format(LabelLayout), formatTick(c.tick))

	for _, r := range rows {
		lo, hi := c.col(r.Start), c.col(r.Deadline)
		if hi < lo {
			lo, hi = hi, lo
		}
		b.WriteString(pad(r.Name, c.nameWidth))
		b.WriteString(" │")
		b.WriteString(strings.Repeat(" ", lo))
		b.WriteString(styles.bar(r.Category, strings.Repeat(string(barRune), hi-lo+1)))
		b.WriteString(strings.Repeat(" ", width-hi-1))
		b.WriteString("│\n")
	}

	ticks := c.ticks()
	axis := []rune(strings.Repeat("─", width))
	for _, t := range ticks {
		axis[c.col(t)] = tickRune
	}
	indent := strings.Repeat(" ", c.nameWidth)
	fmt.Fprintf(&b, "%s └%s┘\n", indent, string(axis))
	fmt.Fprintf(&b, "%s  %s\n", indent, strings.TrimRight(c.labels(ticks), " "))

	fmt.Fprintf(&b, "\n%s  %s academic  %s personal\n", indent,
		styles.bar(planner.Academic, string(barRune)),
		styles.bar(planner.Personal, string(barRune)))

	_, err := io.WriteString(w, b.String())
	return err
}

type chart struct {
	from, to  time.Time
	span      time.Duration
	tick      time.Duration
	width     int
	nameWidth int
}

func newChart(rows []planner.GanttRow, width int) *chart {
	c := &chart{width: width, from: rows[0].Start, to: rows[0].Start}
	for _, r := range rows {
		for _, t := range []time.Time{r.Start, r.Deadline} {
			if t.Before(c.from) {
				c.from = t
			}
			if t.After(c.to) {
				c.to = t
			}
		}
		if n := len([]rune(r.Name)); n > c.nameWidth {
			c.nameWidth = min(n, maxNameWidth)
		}
	}
	if !c.to.After(c.from) {
		c.to = c.from.Add(30 * time.Minute)
	}
	c.span = c.to.Sub(c.from)
	c.tick = TickInterval(c.span)
	return c
}

// col maps a time onto [0, width). The product off*(width-1) is taken in
// 128 bits so spans of many years do not overflow.
func (c *chart) col(t time.Time) int {
	off := t.Sub(c.from)
	if off <= 0 {
		return 0
	}
	if off >= c.span {
		return c.width - 1
	}
	hi, lo := bits.Mul64(uint64(off), uint64(c.width-1))
	q, _ := bits.Div64(hi, lo, uint64(c.span))
	return min(int(q), c.width-1)
}

func (c *chart) ticks() []time.Time {
	first := c.from.Truncate(c.tick)
	if first.Before(c.from) {
		first = first.Add(c.tick)
	}
	var out []time.Time
	for t := first; !t.After(c.to); t = t.Add(c.tick) {
		out = append(out, t)
	}
	return out
}

// labels places a label under each tick that does not overlap the previous.
func (c *chart) labels(ticks []time.Time) string {
	line := []rune(strings.Repeat(" ", c.width+len(LabelLayout)))
	next := 0
	for _, t := range ticks {
		col := c.col(t)
		if col < next {
			continue
		}
		copy(line[col:], []rune(t.Format(LabelLayout)))
		next = col + len(LabelLayout) + 1
	}
	return string(line)
}

type styles struct {
	color    bool
	academic lipgloss.Style
	personal lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		color:    color,
		academic: r.NewStyle().Foreground(AcademicColor),
		personal: r.NewStyle().Foreground(PersonalColor),
	}
}

func (s styles) bar(c planner.Category, text string) string {
	if !s.color {
		return text
	}
	if c == planner.Academic {
		return s.academic.Render(text)
	}
	return s.personal.Render(text)
}

func pad(name string, width int) string {
	r := []rune(name)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return name + strings.Repeat(" ", width-len(r))
}

func formatTick(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%dh", d/time.Hour)
	}
	return fmt.Sprintf("%dm", d/time.Minute)
}
