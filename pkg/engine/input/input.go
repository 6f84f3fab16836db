// Package input layers key handling for the preview backends: raw
// device events are debounced, mapped through rebindable bindings, and
// surfaced as high-level intents.
package input

import (
	"log"
	"os"
	"time"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
		// Unknown escape sequence - discard it
		return ""
	}

	// A bare escape without a sequence body
	return "escape"
}

// ReadKey reads one keypress from the terminal in raw mode and returns
// its binding code. Arrow keys return without needing Enter.
func ReadKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	if b == 0x1b {
		return tryReadArrowKey(b)
	}

	switch b {
	case 3: // Ctrl+C
		return "escape"
	case '\n', '\r':
		return "enter"
	case ' ':
		return "space"
	}

	if b >= 32 && b < 127 {
		return string(b)
	}
	return ""
}

// ReadIntent reads one keypress and maps it to an intent through the
// full input stack.
func ReadIntent() Intent {
	raw := RawInput{
		Device:    DeviceTerminal,
		Code:      ReadKey(),
		Timestamp: time.Now(),
	}
	return MapToIntent(NewDebouncedInput(raw))
}
