package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsouzarc/incast/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// History is optional for the TUI: without a store, predictions
	// simply are not recorded.
	store := ctx.Store
	if err := store.Load(); err != nil {
		store = nil
	}

	p := tea.NewProgram(tui.NewModel(ctx.Service, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
