package update

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/Gentor/internal/config"
	"github.com/Rorical/Gentor/internal/models"
)

// confirmWindow is how long an armed save confirmation stays valid.
const confirmWindow = 2 * time.Second

// In-band commands recognized in the chat prompt.
const (
	ExitCommand     = "/exit"
	SettingsCommand = "/setting"
)

func HandleKeyMsg(m *models.AppModel, keyMsg tea.KeyMsg, d Deps) tea.Cmd {
	switch m.Screen {
	case models.ScreenSettings:
		return handleSettingsKey(m, keyMsg, d)
	default:
		return handleChatKey(m, keyMsg, d)
	}
}

func handleChatKey(m *models.AppModel, keyMsg tea.KeyMsg, d Deps) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		return submitPrompt(m, d)
	case "backspace":
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
	default:
		if len(keyMsg.String()) == 1 {
			m.Input += keyMsg.String()
		}
	}
	return nil
}

func submitPrompt(m *models.AppModel, d Deps) tea.Cmd {
	switch input := strings.TrimSpace(m.Input); {
	case input == ExitCommand:
		return tea.Quit
	case input == SettingsCommand:
		enterSettings(m, d.Settings)
		m.Input = ""
	case input != "":
		// Synchronous by design: the loop suspends here, no key events are
		// serviced and the screen is not repainted until the call returns.
		reply, err := d.Gateway.Complete(context.Background(), d.Settings.Model, m.Input)
		if err != nil {
			m.Messages = append(m.Messages, models.Message{
				Content: "Error: " + err.Error(),
				Type:    models.Error,
			})
		} else {
			m.Messages = append(m.Messages,
				models.Message{Content: m.Input, Type: models.User},
				models.Message{Content: reply, Type: models.Assistant},
			)
		}
		m.Input = ""
	}
	return nil
}

// enterSettings snapshots the record into fresh working buffers. The Enter
// that triggered the transition arrives as a key-release on some terminals,
// so JustEntered absorbs the next Enter before it can arm a save.
func enterSettings(m *models.AppModel, settings *config.Settings) {
	m.Screen = models.ScreenSettings
	m.Settings = models.SettingsState{
		Fields: [models.FieldCount]string{
			settings.Provider,
			settings.Model,
			settings.APIKey,
			settings.BaseURL,
		},
		JustEntered: true,
	}
}

func handleSettingsKey(m *models.AppModel, keyMsg tea.KeyMsg, d Deps) tea.Cmd {
	s := &m.Settings
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter":
		switch {
		case s.JustEntered:
			s.JustEntered = false
		case s.ConfirmSave:
			commitSettings(m, d)
		default:
			s.ConfirmSave = true
			s.ConfirmAt = d.Now()
		}
	case "up":
		if s.Focus > 0 {
			s.Focus--
		}
	case "down":
		if s.Focus < models.FieldCount-1 {
			s.Focus++
		}
	case "backspace":
		if field := s.Fields[s.Focus]; len(field) > 0 {
			s.Fields[s.Focus] = field[:len(field)-1]
		}
	case "esc":
		leaveSettings(m)
	default:
		if len(keyMsg.String()) == 1 {
			s.Fields[s.Focus] += keyMsg.String()
		}
	}
	return nil
}

// commitSettings copies the working buffers into the record and persists it.
// The in-memory record is updated even when the write fails; the failure is
// surfaced once as a transcript line and the next save can retry.
func commitSettings(m *models.AppModel, d Deps) {
	d.Settings.Provider = m.Settings.Fields[0]
	d.Settings.Model = m.Settings.Fields[1]
	d.Settings.APIKey = m.Settings.Fields[2]
	d.Settings.BaseURL = m.Settings.Fields[3]

	if err := d.Store.Save(d.Settings); err != nil {
		m.Messages = append(m.Messages, models.Message{
			Content: "Failed to save settings: " + err.Error(),
			Type:    models.Error,
		})
	} else {
		m.Messages = append(m.Messages, models.Message{
			Content: "Settings saved.",
			Type:    models.Program,
		})
	}

	leaveSettings(m)
}

func leaveSettings(m *models.AppModel) {
	m.Settings.ConfirmSave = false
	m.Settings.ConfirmAt = time.Time{}
	m.Screen = models.ScreenChat
}
