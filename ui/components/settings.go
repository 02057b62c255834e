package components

import (
	"strings"

	"github.com/Rorical/Gentor/internal/models"
	"github.com/Rorical/Gentor/ui/styles"
)

// Captions for the display-only save row. It reflects the confirmation
// state; it is never focusable.
const (
	SaveCaption        = "Press Enter to save"
	ConfirmSaveCaption = "Press Enter once more to save"
)

var fieldLabels = [models.FieldCount]string{"Provider", "Model", "API Key", "Base URL"}

// RenderSettings draws the full-screen settings panel: four editable rows
// and the save row. The focused row is highlighted and carries the cursor.
func RenderSettings(s models.SettingsState, width int) string {
	var b strings.Builder

	b.WriteString(styles.PanelTitleStyle(width).Render("Settings Editor") + "\n")

	label := styles.LabelStyle()
	for i := 0; i < models.FieldCount; i++ {
		row := label.Render(fieldLabels[i]+": ") + s.Fields[i]
		style := styles.FieldStyle(width)
		if i == s.Focus {
			row += cursorGlyph
			style = styles.FocusedFieldStyle(width)
		}
		b.WriteString(style.Render(row) + "\n")
	}

	caption := SaveCaption
	if s.ConfirmSave {
		caption = ConfirmSaveCaption
	}
	b.WriteString(styles.FieldStyle(width).Render(caption) + "\n")
	b.WriteString(styles.HintStyle(width).Render("Up/Down: field · Enter: save · Esc: cancel"))

	return b.String()
}
