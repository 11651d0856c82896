package render

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/nanaki-93/lsr/model"
)

// names are measured on several goroutines only past this count
const parallelMeasureThreshold = 4096

// Grid is a column layout for a list of names. Column i holds the names
// i*Stride .. i*Stride+Stride-1, so Stride is also the number of rows.
type Grid struct {
	Stride int
	Widths []int
}

func (g Grid) Columns() int {
	return len(g.Widths)
}

// Total is the printed width of a full row without separators.
func (g Grid) Total() int {
	total := 0
	for _, w := range g.Widths {
		total += w
	}
	return total
}

// Layout picks the smallest stride whose row width is strictly below
// maxWidth. When none fits it settles on a single column. It never fails.
func Layout(names []string, maxWidth int) Grid {
	lengths := measure(names)
	n := len(lengths)
	if n == 0 {
		return Grid{Stride: 1}
	}

	for stride := 1; ; stride++ {
		grid := Grid{Stride: stride, Widths: chunkWidths(lengths, stride)}
		if grid.Total() < maxWidth || stride >= n {
			return grid
		}
	}
}

// chunkWidths splits lengths into consecutive chunks of size stride and
// returns the widest value of each.
func chunkWidths(lengths []int, stride int) []int {
	n := len(lengths)
	widths := make([]int, 0, (n+stride-1)/stride)
	for start := 0; start < n; start += stride {
		end := min(start+stride, n)
		w := 0
		for _, l := range lengths[start:end] {
			w = max(w, l)
		}
		widths = append(widths, w)
	}
	return widths
}

// measure returns the code point count of every string in a new slice.
// Large inputs are split into blocks measured concurrently.
func measure(items []string) []int {
	lengths := make([]int, len(items))
	if len(items) < parallelMeasureThreshold {
		for i, s := range items {
			lengths[i] = utf8.RuneCountInString(s)
		}
		return lengths
	}

	workers := runtime.NumCPU()
	block := (len(items) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(items); start += block {
		end := min(start+block, len(items))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				lengths[i] = utf8.RuneCountInString(items[i])
			}
		}(start, end)
	}
	wg.Wait()

	return lengths
}

func widest(items []string) int {
	w := 0
	for _, l := range measure(items) {
		w = max(w, l)
	}
	return w
}

// RenderGrid prints names row by row. Row j starts at index j and each
// following column advances the index by the stride.
func RenderGrid(w io.Writer, grid Grid, names []string, classes []model.ColorClass, scheme *Scheme) error {
	if len(names) == 0 {
		return nil
	}
	if len(classes) != len(names) {
		return fmt.Errorf("grid: %d names but %d color classes", len(names), len(classes))
	}

	for row := 0; row < grid.Stride; row++ {
		idx := row
		for col := 0; col < len(grid.Widths); col++ {
			if idx < len(names) {
				cell := fmt.Sprintf("%-*s", grid.Widths[col], names[idx])
				if _, err := fmt.Fprint(w, scheme.Name(classes[idx]).Sprint(cell), " "); err != nil {
					return err
				}
			}
			idx += grid.Stride
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
