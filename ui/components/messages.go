package components

import (
	"strings"

	"github.com/Rorical/Gentor/internal/models"
	"github.com/Rorical/Gentor/ui/styles"
)

// RenderMessages projects the transcript into a soft-wrapped block of styled
// lines. Pure: no state beyond its arguments.
func RenderMessages(messages []models.Message, width int) string {
	var b strings.Builder

	wrap := width - 8
	if wrap < 1 {
		wrap = 1
	}

	programStyle := styles.ProgramStyle().Width(wrap)
	userStyle := styles.UserStyle().Width(wrap)
	assistantStyle := styles.AssistantStyle().Width(wrap)
	errorStyle := styles.ErrorStyle().Width(wrap)

	for _, msg := range messages {
		switch msg.Type {
		case models.User:
			b.WriteString(userStyle.Render("> "+msg.Content) + "\n")
		case models.Assistant:
			b.WriteString(assistantStyle.Render(msg.Content) + "\n")
		case models.Error:
			b.WriteString(errorStyle.Render(msg.Content) + "\n")
		default:
			b.WriteString(programStyle.Render(msg.Content) + "\n")
		}
	}

	return b.String()
}
