package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/presentation/tui/update"
)

// ForwardChanges returns an observer that hands feed changes to the program loop.
// send is usually (*tea.Program).Send.
func ForwardChanges(send func(tea.Msg)) usecase.Observer {
	return func(c usecase.Change) {
		send(update.CategoryChangedMsg{Change: c})
	}
}
