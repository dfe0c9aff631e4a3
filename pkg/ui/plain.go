package ui

import (
	"io"

	"github.com/irctrakz/netwatch/pkg/monitor"
)

// clearScreen moves the cursor home and wipes the previous frame.
const clearScreen = "\033[H\033[2J"

// PlainPresenter redraws the frame text in place using ANSI clear codes. It is
// the fallback for terminals where the full-screen UI cannot start, and the
// mode used when output is piped.
type PlainPresenter struct {
	w     io.Writer
	clear bool
}

// NewPlain returns a plain presenter writing to w. clear=false appends frames
// instead of redrawing in place, which keeps piped output readable.
func NewPlain(w io.Writer, clear bool) *PlainPresenter {
	return &PlainPresenter{w: w, clear: clear}
}

// Present writes one frame.
func (p *PlainPresenter) Present(f *monitor.Frame) error {
	if p.clear {
		if _, err := io.WriteString(p.w, clearScreen); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.w, RenderText(f))
	return err
}

// Close is a no-op; the plain presenter holds no terminal state.
func (p *PlainPresenter) Close() {}
