// Package bubbletea provides the Bubble Tea TUI for the persona chat.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/personachat/persona"
)

// SendFunc executes one conversation turn. It blocks until the reply (or
// the fallback reply on failure) has been appended to the session. The
// returned error describes why the turn fell back; the returned message is
// what the transcript now ends with.
type SendFunc func(ctx context.Context, session *persona.Session, text string) (persona.Message, error)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. When the context is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ReplyMsg signals that a conversation turn has completed.
type ReplyMsg struct {
	Reply persona.Message
	Err   error
}
