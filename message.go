package persona

import "time"

// Message is a single role-tagged entry in a conversation. The transcript
// stores only user and assistant messages; system messages are synthesized
// per request by AssembleRequest and never stored.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// NewUserMessage creates a user message timestamped now.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: time.Now()}
}

// NewAssistantMessage creates an assistant message timestamped now.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content, Timestamp: time.Now()}
}
