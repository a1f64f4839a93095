// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility can be found.
var ErrUnavailable = errors.New("clipboard unavailable")

// Write copies text to the system clipboard. Trailing whitespace is dropped.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(strings.TrimRight(text, " \t\r\n"))
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}
