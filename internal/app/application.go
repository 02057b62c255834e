package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/Gentor/internal/config"
	"github.com/Rorical/Gentor/internal/core"
	"github.com/Rorical/Gentor/internal/models"
	"github.com/Rorical/Gentor/internal/update"
)

// Application wires the configuration record, the completion gateway and
// the UI model together for one interactive session.
type Application struct {
	config  *config.Settings
	service *core.ChatService
	model   *AppModel
}

func NewApplication(cfg *config.Settings) *Application {
	service := core.NewChatService(cfg)

	model := &AppModel{
		appModel: createInitialAppModel(),
		deps: update.Deps{
			Settings: cfg,
			Gateway:  service,
			Store:    config.FileStore{},
			Now:      time.Now,
		},
	}

	return &Application{
		config:  cfg,
		service: service,
		model:   model,
	}
}

// Start runs the UI loop. The alternate screen is entered here and restored
// by the bubbletea runtime on every exit path.
func (app *Application) Start() error {
	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func createInitialAppModel() models.AppModel {
	return models.AppModel{
		Screen: models.ScreenChat,
		Messages: []models.Message{
			{Content: "Gentor ready! Type your message or '/setting' to edit config.", Type: models.Program},
		},
	}
}
