//go:build !tinygo

package hal

import (
	"strings"
	"sync"
)

const (
	lcdCols = 16
	lcdRows = 2
)

// lcdFrame is a copy of what the panel shows.
type lcdFrame struct {
	cells     [lcdRows][lcdCols]byte
	r, g, b   uint8
	backlight bool
}

func (f lcdFrame) line(row int) string {
	return string(f.cells[row][:])
}

// printable renders one row for a terminal.
func (f lcdFrame) printable(row int) string {
	var sb strings.Builder
	for _, c := range f.cells[row] {
		sb.WriteRune(lcdRune(c))
	}
	return sb.String()
}

// lcdRune maps a character ROM byte to something a terminal can show.
func lcdRune(c byte) rune {
	switch {
	case c == 0xFF:
		return '█'
	case c < 0x20 || c > 0x7E:
		return ' '
	default:
		return rune(c)
	}
}

// hostLCD emulates the 16x2 character display in memory.
type hostLCD struct {
	mu    sync.Mutex
	frame lcdFrame
	col   int
	row   int
}

func newHostLCD() *hostLCD {
	l := &hostLCD{}
	l.clearLocked()
	return l
}

func (l *hostLCD) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
}

func (l *hostLCD) clearLocked() {
	for r := range l.frame.cells {
		for c := range l.frame.cells[r] {
			l.frame.cells[r][c] = ' '
		}
	}
	l.col, l.row = 0, 0
}

func (l *hostLCD) SetCursor(col, row int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if row >= lcdRows {
		row = lcdRows - 1
	}
	l.col, l.row = col, row
}

// Write stores text at the cursor. Characters past the last column are dropped.
func (l *hostLCD) Write(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(text) && l.col < lcdCols; i++ {
		l.frame.cells[l.row][l.col] = text[i]
		l.col++
	}
}

func (l *hostLCD) SetBacklight(r, g, b uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frame.r, l.frame.g, l.frame.b = r, g, b
	l.frame.backlight = true
}

// snapshot returns a copy of the current frame.
func (l *hostLCD) snapshot() lcdFrame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}
