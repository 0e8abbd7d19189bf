package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Refresher forwards board changes to the running program. Its Notify method
// is meant to be the controller's OnChange hook; it is a no-op until a
// program is attached.
type Refresher struct {
	program atomic.Pointer[tea.Program]
}

// Notify sends a RefreshMsg to the attached program, if any.
func (r *Refresher) Notify() {
	if p := r.program.Load(); p != nil {
		p.Send(RefreshMsg{})
	}
}

func (r *Refresher) attach(p *tea.Program) {
	r.program.Store(p)
}

// Run starts the terminal board on the alternate screen and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, b Board, r *Refresher, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(ctx, b), opts...)

	if r != nil {
		r.attach(p)
		defer r.attach(nil)
	}

	_, err := p.Run()
	return err
}
