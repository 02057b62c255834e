package components

import (
	"github.com/Rorical/Gentor/ui/styles"
)

const cursorGlyph = "█"

const chatHint = "Enter: send · /setting: config · /exit: exit"

// RenderInput draws the chat prompt box with a block cursor after the last
// character, plus the key hint line beneath it.
func RenderInput(input string, width int) string {
	box := styles.InputStyle(width).Render(input + cursorGlyph)
	hint := styles.HintStyle(width).Render(chatHint)
	return box + "\n" + hint
}
