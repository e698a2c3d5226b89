package persona

import (
	"time"

	"github.com/google/uuid"
)

// Session holds all mutable state for one interactive session. It is owned
// by a single goroutine and is not safe for concurrent mutation; the UI
// guarantees at most one in-flight request per session. Nothing is
// persisted; the session dies with the process.
type Session struct {
	ID          string
	Transcript  []Message
	Personality Personality
	Model       string
	APIKey      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSession creates a session with defaults: the first personality, the
// default model, an empty transcript, and no API key.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:          uuid.NewString(),
		Personality: DefaultPersonality(),
		Model:       DefaultModel,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AppendUser appends a user message to the transcript.
func (s *Session) AppendUser(content string) Message {
	msg := NewUserMessage(content)
	s.Transcript = append(s.Transcript, msg)
	s.UpdatedAt = msg.Timestamp
	return msg
}

// AppendAssistant appends an assistant message to the transcript.
func (s *Session) AppendAssistant(content string) Message {
	msg := NewAssistantMessage(content)
	s.Transcript = append(s.Transcript, msg)
	s.UpdatedAt = msg.Timestamp
	return msg
}

// SelectPersonality switches the active personality. Switching to a
// different personality discards the transcript unconditionally;
// re-selecting the current personality is a no-op.
func (s *Session) SelectPersonality(p Personality) {
	if p.Name == s.Personality.Name {
		return
	}
	s.Personality = p
	s.Transcript = nil
	s.UpdatedAt = time.Now()
}

// SelectModel switches the active model. The transcript is kept.
func (s *Session) SelectModel(model string) {
	if model == s.Model {
		return
	}
	s.Model = model
	s.UpdatedAt = time.Now()
}

// ClearTranscript empties the transcript without changing the personality
// or model selection.
func (s *Session) ClearTranscript() {
	s.Transcript = nil
	s.UpdatedAt = time.Now()
}

// Stats reports per-role message counts for the current transcript.
type Stats struct {
	UserMessages      int
	AssistantMessages int
}

// Stats counts user and assistant messages in the transcript.
func (s *Session) Stats() Stats {
	var st Stats
	for _, msg := range s.Transcript {
		switch msg.Role {
		case RoleUser:
			st.UserMessages++
		case RoleAssistant:
			st.AssistantMessages++
		}
	}
	return st
}
