package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"daytrack/internal/cli"
	"daytrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model, err := tui.NewModel(ctx.Store, ctx.StreakThreshold(), ctx.Today())
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
