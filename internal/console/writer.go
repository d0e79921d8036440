package console

import (
	"io"
	"strings"
	"sync"

	"github.com/pixil98/go-rotsim/internal/display"
)

// lineWriter serialises writes to a connection. Log lines arrive from the
// control goroutine while prompts come from the session loop.
type lineWriter struct {
	mu    sync.Mutex
	w     io.Writer
	width int
}

func (w *lineWriter) println(lines ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, l := range lines {
		if _, err := io.WriteString(w.w, display.WrapWidth(l, w.width)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *lineWriter) print(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := io.WriteString(w.w, text)
	return err
}

func (w *lineWriter) block(text string) error {
	return w.println(strings.Split(strings.TrimRight(text, "\n"), "\n")...)
}
