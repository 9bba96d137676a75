package poller

import (
	"fmt"
	"io"
	"sync"
)

// clearScreen moves the cursor home and clears a VT100 terminal.
const clearScreen = "\033[H\033[2J"

// WriterDisplay renders each update to a writer, replacing the previous one
// when the writer is a terminal.
type WriterDisplay struct {
	mu    sync.Mutex
	w     io.Writer
	clear bool
}

// NewWriterDisplay creates a display writing to w. When clear is set every
// update starts by clearing the screen.
func NewWriterDisplay(w io.Writer, clear bool) *WriterDisplay {
	return &WriterDisplay{w: w, clear: clear}
}

// Show writes text as the new display content.
func (d *WriterDisplay) Show(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.clear {
		fmt.Fprint(d.w, clearScreen)
	}
	fmt.Fprintln(d.w, text)
}
