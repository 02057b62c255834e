package models

import "time"

// Screen identifies which of the two screens currently owns key input.
type Screen int

const (
	ScreenChat Screen = iota
	ScreenSettings
)

// FieldCount is the number of editable settings fields
// (provider, model, api key, base url).
const FieldCount = 4

// SettingsState holds the transient state of the settings editor. It is
// rebuilt from the configuration record on every transition into the
// settings screen, so flags from a previous visit never leak in.
//
// Invariant: ConfirmAt is nonzero iff ConfirmSave is true.
type SettingsState struct {
	Fields      [FieldCount]string // working copies of the record fields
	Focus       int                // 0..FieldCount-1
	ConfirmSave bool               // first Enter pressed, waiting for second
	ConfirmAt   time.Time          // when the confirmation was armed
	JustEntered bool               // absorb the Enter that opened the screen
}

// AppModel is the full UI state owned by the event loop.
type AppModel struct {
	Screen   Screen
	Messages []Message     // transcript, append-only
	Input    string        // chat prompt buffer, cursor always at the end
	Settings SettingsState // meaningful only while Screen == ScreenSettings
	Width    int
	Height   int
}
