// Package clipio is the system clipboard transport. It prefers the
// golang.design backend, which talks to the display server directly, and
// falls back to the atotto command-line backend when that backend cannot
// initialize (headless sessions, missing X11 libs).
package clipio

import (
	"sync"

	atotto "github.com/atotto/clipboard"
	xclip "golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	xclipOK  bool
)

func ensureInit() {
	initOnce.Do(func() {
		xclipOK = xclip.Init() == nil
	})
}

// Write places text on the system clipboard.
func Write(text string) error {
	ensureInit()
	if xclipOK {
		xclip.Write(xclip.FmtText, []byte(text))
		return nil
	}
	return atotto.WriteAll(text)
}

// Read returns the system clipboard's text content, "" when the clipboard
// is empty.
func Read() (string, error) {
	ensureInit()
	if xclipOK {
		return string(xclip.Read(xclip.FmtText)), nil
	}
	return atotto.ReadAll()
}
