package models

import "time"

// Chat transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRecord is one line of the locally persisted conversation transcript.
type ChatRecord struct {
	ID        string
	Role      string
	Content   string
	CreatedAt time.Time
}
