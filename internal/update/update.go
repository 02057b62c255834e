package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/Gentor/internal/config"
	"github.com/Rorical/Gentor/internal/models"
)

// Gateway is the completion endpoint as seen by the key handlers. The call
// is synchronous: the loop suspends until it returns.
type Gateway interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Store persists the configuration record on a confirmed save.
type Store interface {
	Save(settings *config.Settings) error
}

// Deps bundles the collaborators the handlers need. Now is injectable so
// tests can simulate elapsed time without real delays.
type Deps struct {
	Settings *config.Settings
	Gateway  Gateway
	Store    Store
	Now      func() time.Time
}

func Handle(m *models.AppModel, msg tea.Msg, d Deps) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg, d)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(m, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(m, d)
	}
	return nil
}

func HandleWindowSizeMsg(m *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	m.Width = sizeMsg.Width
	m.Height = sizeMsg.Height
}

type TickMsg time.Time

// TickCmd keeps the loop waking on a bounded interval so the confirmation
// deadline is checked even with no key activity.
func TickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// HandleTickMsg runs the ambient transition: an armed save confirmation
// expires once the window has lapsed, so the next Enter re-arms instead of
// committing.
func HandleTickMsg(m *models.AppModel, d Deps) tea.Cmd {
	if m.Screen == models.ScreenSettings && m.Settings.ConfirmSave {
		if d.Now().Sub(m.Settings.ConfirmAt) > confirmWindow {
			m.Settings.ConfirmSave = false
			m.Settings.ConfirmAt = time.Time{}
		}
	}
	return TickCmd()
}
