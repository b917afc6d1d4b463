package client

import "github.com/atotto/clipboard"

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// Copy puts text on the system clipboard. It returns false when no
// clipboard is available or the write fails.
func Copy(text string) bool {
	if clipboard.Unsupported {
		return false
	}
	return writeAll(text) == nil
}
