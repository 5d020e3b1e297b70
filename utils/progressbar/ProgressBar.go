// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"strings"
	"time"
)

// ProgressBar prints the progress of an evaluation batch to the
// terminal. The bar must be managed manually: call Increment() after
// each completed iteration and Display() whenever an updated bar
// should be printed, then Finish() once the batch is done.
type ProgressBar struct {
	width     int
	max       int
	current   int
	startTime time.Time
}

// New returns a ProgressBar that is width characters wide and reaches
// 100% after max Increment() calls.
func New(width, max int) *ProgressBar {
	return &ProgressBar{width: width, max: max, startTime: time.Now()}
}

// Increment increments the internal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	if p.current < p.max {
		p.current++
	}
}

// Display prints the progress bar, overwriting the previously printed
// bar.
func (p *ProgressBar) Display() {
	filled := 0
	if p.max > 0 {
		filled = p.current * p.width / p.max
	}

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	bar.WriteString(fmt.Sprintf("| [%.2f%% | elapsed: %v]",
		percent(p.current, p.max),
		time.Since(p.startTime).Truncate(time.Second)))

	fmt.Printf("\n\033[1A\033[K%v", bar.String())
}

// Finish jumps to the next line after the printed bar.
func (p *ProgressBar) Finish() {
	fmt.Println()
}

func percent(current, max int) float64 {
	if max == 0 {
		return 100
	}
	return float64(current) / float64(max) * 100
}
