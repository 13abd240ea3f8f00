package tui

// sparklineChars are the eight block elements, lowest first.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SampleWindow keeps the most recent samples of a series, up to a capacity.
type SampleWindow struct {
	samples  []float64
	capacity int
}

// NewSampleWindow creates a window holding at most capacity samples.
func NewSampleWindow(capacity int) *SampleWindow {
	w := &SampleWindow{}
	w.SetCap(capacity)
	return w
}

// Push appends v, dropping the oldest sample once the window is full.
func (w *SampleWindow) Push(v float64) {
	if len(w.samples) == w.capacity {
		w.samples = append(w.samples[:0], w.samples[1:]...)
	}
	w.samples = append(w.samples, v)
}

func (w *SampleWindow) Len() int { return len(w.samples) }

func (w *SampleWindow) Cap() int { return w.capacity }

// Last returns the newest sample, or 0 when the window is empty.
func (w *SampleWindow) Last() float64 {
	if len(w.samples) == 0 {
		return 0
	}
	return w.samples[len(w.samples)-1]
}

// Values returns the samples oldest first. The slice is valid until the next
// Push.
func (w *SampleWindow) Values() []float64 {
	if len(w.samples) == 0 {
		return nil
	}
	return w.samples
}

// SetCap changes the capacity, keeping the newest samples that still fit.
// Capacities below 1 are raised to 1.
func (w *SampleWindow) SetCap(capacity int) {
	capacity = max(capacity, 1)
	if n := len(w.samples); n > capacity {
		w.samples = append([]float64(nil), w.samples[n-capacity:]...)
	}
	w.capacity = capacity
}

// Reset drops every sample.
func (w *SampleWindow) Reset() { w.samples = w.samples[:0] }

// clampPercent bounds v to [0, 100].
func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}

// RenderSparkline renders percentages (0..100) as a row of block elements,
// one per value.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		idx := min(int(clampPercent(v)/100*7), 7)
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// brailleDots holds the dot bits of a braille cell by column, then row.
// A braille rune is U+2800 plus the bits of its raised dots.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// RenderBrailleChart plots percentages (0..100) on a grid of rows braille
// lines of width cells. Each cell holds two samples, so the chart shows the
// last 2*width values, most recent on the right.
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}
	dotRows := rows * 4
	dotCols := width * 2

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}

	if len(values) > dotCols {
		values = values[len(values)-dotCols:]
	}
	offset := dotCols - len(values)
	for i, v := range values {
		dotCol := offset + i
		dotRow := dotRows - 1 - int(clampPercent(v)/100*float64(dotRows-1))
		grid[dotRow/4][dotCol/2] |= brailleDots[dotCol%2][dotRow%4]
	}

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return lines
}
