// Package terminal provides utilities for terminal operations such as
// clearing previously printed text.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Width returns the current terminal width, falling back to 80 columns
// when the size cannot be determined (pipes, CI environments).
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// ClearPreviousLines removes text that was previously printed to the
// terminal. textLength is the total number of characters printed
// (prompt plus user input); the function computes how many physical
// lines that occupied at the current terminal width, then moves up and
// clears each one with ANSI escape sequences.
//
// One extra line is cleared to account for the newline produced when
// the user pressed Enter. This is used to scrub secrets like API keys
// from the scrollback after they have been read.
func ClearPreviousLines(textLength int) {
	width := Width()
	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	lines++ // the empty line the cursor landed on after Enter

	for i := 0; i < lines; i++ {
		fmt.Print("\r\x1b[2K") // move to start and clear the entire line
		if i < lines-1 {
			fmt.Print("\x1b[1A") // move up one line
		}
	}
}
