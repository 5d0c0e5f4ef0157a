package entity

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatSession is a conversation thread. UserID is empty for a session
// opened without signing in.
type ChatSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owned reports whether the session was opened by a signed-in user.
func (s *ChatSession) Owned() bool { return s.UserID != "" }

type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
