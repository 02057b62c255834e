package models

type MessageType int

const (
	Program MessageType = iota
	User
	Assistant
	Error
)

// Message is one transcript line. The transcript is append-only: lines are
// never reordered or deleted once appended.
type Message struct {
	Content string
	Type    MessageType
}
