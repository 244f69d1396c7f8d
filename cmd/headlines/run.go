package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/presentation/tui"
)

// RunCmd opens the TUI.
type RunCmd struct{}

// Run starts the loads and blocks until the reader exits.
func (c *RunCmd) Run(ctx context.Context, g *Globals) error {
	a, err := newApp(g, true)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewModel(a.settings, a.aggregator.State(), a.searchSource(),
		tui.WithLive(a.aggregator.Mode() == usecase.ModeLive),
		tui.WithContext(ctx),
	)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := a.aggregator.State().Subscribe(tui.ForwardChanges(p.Send))
	defer unsubscribe()
	a.aggregator.Initialize(ctx)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
