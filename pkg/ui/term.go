package ui

import (
	"fmt"
	"sync"

	tui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/irctrakz/netwatch/pkg/monitor"
)

// TermPresenter owns the terminal through termui for flicker-free full-screen
// redraws. Quit keys (q, Ctrl+C) invoke the cancel callback so the tick loop
// shuts down between ticks; resizes redraw the last frame at the new size.
type TermPresenter struct {
	cancel func()

	mu   sync.Mutex
	par  *widgets.Paragraph
	done chan struct{}
	once sync.Once
}

// NewTerm initializes the terminal and starts the keyboard/resize event
// handler. cancel is invoked when the user quits from the keyboard.
func NewTerm(cancel func()) (*TermPresenter, error) {
	if err := tui.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	par := widgets.NewParagraph()
	par.Border = false
	width, height := tui.TerminalDimensions()
	par.SetRect(0, 0, width, height)

	p := &TermPresenter{
		cancel: cancel,
		par:    par,
		done:   make(chan struct{}),
	}
	go p.handleEvents()
	return p, nil
}

func (p *TermPresenter) handleEvents() {
	events := tui.PollEvents()
	for {
		select {
		case <-p.done:
			return
		case e := <-events:
			switch {
			case e.Type == tui.KeyboardEvent && (e.ID == "q" || e.ID == "<C-c>"):
				p.cancel()
			case e.Type == tui.ResizeEvent:
				size := e.Payload.(tui.Resize)
				p.mu.Lock()
				p.par.SetRect(0, 0, size.Width, size.Height)
				tui.Clear()
				tui.Render(p.par)
				p.mu.Unlock()
			}
		}
	}
}

// Present draws one frame.
func (p *TermPresenter) Present(f *monitor.Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.par.Text = RenderText(f)
	tui.Render(p.par)
	return nil
}

// Close restores the terminal. Safe on every exit path; repeated calls are
// no-ops.
func (p *TermPresenter) Close() {
	p.once.Do(func() {
		close(p.done)
		p.mu.Lock()
		defer p.mu.Unlock()
		tui.Close()
	})
}
