// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"strings"
	"time"
)

// ProgressBar implements a concurrent progress bar. Display runs in a
// separate goroutine so that the bar redraws concurrently with the
// work being measured.
type ProgressBar struct {
	// width is the number of characters wide the bar is drawn
	width int

	// maxProgress is the number of Increment calls at which the bar
	// reaches 100%
	maxProgress int

	incrementEvent chan int
	closeEvent     chan struct{}
	closed         bool

	updateEvery time.Duration
}

// New returns a new progress bar that is width characters wide and
// reaches 100% capacity after max Increment() calls
func New(width, max int, updateEvery time.Duration) *ProgressBar {
	return &ProgressBar{
		width:          width,
		maxProgress:    max,
		incrementEvent: make(chan int),
		closeEvent:     make(chan struct{}),
		updateEvery:    updateEvery,
	}
}

// Increment increments the internal progress counter. Each time an
// iteration of the measured work completes, Increment should be called.
func (p *ProgressBar) Increment() {
	if p.closed {
		return
	}
	select {
	case p.incrementEvent <- 1:
	case <-p.closeEvent:
	}
}

// Close closes the progress bar so that it no longer displays to the
// screen and cleans up the display goroutine
func (p *ProgressBar) Close() {
	if p.closed {
		panic("close: close on closed progress bar")
	}
	close(p.closeEvent)
	p.closed = true
	fmt.Println() // Jump to next line after printed bar
}

// Display displays the progress bar on the screen. It should only be
// called once.
func (p *ProgressBar) Display() {
	go func() {
		tick := time.NewTicker(p.updateEvery)
		defer tick.Stop()

		progress := 0
		dirty := true

		for {
			select {
			case n := <-p.incrementEvent:
				progress += n
				dirty = true

			case <-tick.C:
				if dirty {
					p.draw(progress)
					dirty = false
				}

			case <-p.closeEvent:
				p.draw(progress)
				return
			}
		}
	}()
}

func (p *ProgressBar) draw(progress int) {
	filled := p.width * progress / p.maxProgress

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("=", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	bar.WriteString("|")

	fmt.Printf("\r%v %3.0f%%", bar.String(),
		100*float64(progress)/float64(p.maxProgress))
}
