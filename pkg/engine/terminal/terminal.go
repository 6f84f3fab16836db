// Package terminal provides terminal size detection for text previews.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitViewport clamps a requested preview size to what fits on the current
// terminal, reserving the given number of rows for text around the map.
func FitViewport(wantCols, wantRows, reservedRows int) (cols, rows int) {
	width, height := GetSize()

	cols = wantCols
	if cols > width {
		cols = width
	}

	rows = wantRows
	if avail := height - reservedRows; rows > avail {
		rows = avail
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
