package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/Gentor/internal/models"
	"github.com/Rorical/Gentor/internal/update"
	"github.com/Rorical/Gentor/ui/components"
)

// AppModel adapts the application state to the bubbletea model contract.
type AppModel struct {
	appModel models.AppModel
	deps     update.Deps
}

func (m *AppModel) Init() tea.Cmd {
	return update.TickCmd()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, update.Handle(&m.appModel, msg, m.deps)
}

func (m *AppModel) View() string {
	if m.appModel.Screen == models.ScreenSettings {
		return components.RenderSettings(m.appModel.Settings, m.appModel.Width)
	}

	var b strings.Builder
	b.WriteString(components.RenderMessages(m.appModel.Messages, m.appModel.Width))
	b.WriteString(components.RenderInput(m.appModel.Input, m.appModel.Width))
	return b.String()
}
