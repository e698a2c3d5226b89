package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/personachat/persona"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the persona chat TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript area. Exported for test access.
	Viewport viewport.Model

	send    SendFunc
	session *persona.Session
	theme   persona.Theme
	styles  Styles
	spin    spinner.Model

	// blocks mirrors the full session transcript, one block per message.
	// The request window never applies here: the UI always shows
	// everything, including history the backend no longer sees.
	blocks []MessageBlock

	// keyGate is set while the session has no API key. The input runs in
	// password echo mode and chat entry is blocked until a key is given.
	keyGate bool

	running bool
	err     error
	ready   bool
}

// New creates a TUI Model for the given send function and session.
func New(send SendFunc, session *persona.Session, theme persona.Theme) Model {
	styles := NewStyles(theme)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Muted))

	m := Model{
		Input:   ti,
		send:    send,
		session: session,
		theme:   theme,
		styles:  styles,
		spin:    sp,
		keyGate: session.APIKey == "",
	}
	if m.keyGate {
		m.Input.EchoMode = textinput.EchoPassword
		m.Input.Placeholder = "Enter your Groq API key..."
	} else {
		m.Input.Placeholder = chatPlaceholder(session.Personality)
	}
	return m
}

func chatPlaceholder(p persona.Personality) string {
	return fmt.Sprintf("Ask %s a question...", p.Name)
}

// Running returns whether a completion request is in flight.
func (m Model) Running() bool { return m.running }

// Err returns the error from the last turn, if any.
func (m Model) Err() error { return m.err }

// AwaitingKey returns whether the UI is blocked on API key entry.
func (m Model) AwaitingKey() bool { return m.keyGate }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ReplyMsg:
		return m.handleReply(msg)
	}

	// Pass remaining messages to sub-components. Viewport always receives
	// messages for scrolling (keyboard and mouse).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputHeight := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputHeight - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.rebuildBlocks()
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
		m.Viewport.SetContent(m.renderContent())
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			// No cancellation path: the request runs to the reply or to
			// the client timeout.
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		if m.keyGate {
			return m.submitKey(text), nil
		}
		return m.submitInput(text)

	case tea.KeyCtrlP:
		if !m.running && !m.keyGate {
			m = m.cyclePersonality()
		}
		return m, nil

	case tea.KeyCtrlO:
		if !m.running && !m.keyGate {
			m = m.cycleModel()
		}
		return m, nil

	case tea.KeyCtrlL:
		if !m.running && !m.keyGate {
			m.session.ClearTranscript()
			m.err = nil
			m = m.rebuildBlocks()
			m.Viewport.SetContent(m.renderContent())
		}
		return m, nil
	}

	// When idle, pass keys to both input (for typing) and viewport (for
	// scrolling). Only forward non-character keys to viewport to avoid
	// conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	if !m.running {
		var cmds []tea.Cmd
		var cmd tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// submitKey accepts the API key and unlocks chat entry.
func (m Model) submitKey(key string) Model {
	m.session.APIKey = key
	m.keyGate = false
	m.Input.SetValue("")
	m.Input.EchoMode = textinput.EchoNormal
	m.Input.Placeholder = chatPlaceholder(m.session.Personality)
	return m
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.Input.Blur()
	m.err = nil
	m.running = true

	// Show the user message immediately; the session itself is appended
	// to by the send function.
	m.blocks = append(m.blocks, NewUserMessageBlock(text, m.styles))
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	return m, tea.Batch(sendTurn(m.send, m.session, text), m.spin.Tick)
}

// sendTurn runs one conversation turn off the UI goroutine and delivers
// the outcome as a ReplyMsg. The context is deliberately not cancellable:
// once issued, the request runs to completion or to the client timeout.
func sendTurn(send SendFunc, session *persona.Session, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := send(context.Background(), session, text)
		return ReplyMsg{Reply: reply, Err: err}
	}
}

func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.running = false
	m.err = msg.Err

	// The transcript now holds both sides of the turn (the fallback reply
	// on failure); rebuild the view from it.
	m = m.rebuildBlocks()
	if msg.Err != nil && len(m.blocks) > 0 {
		// Error notice goes above the fallback reply.
		last := m.blocks[len(m.blocks)-1]
		m.blocks = append(m.blocks[:len(m.blocks)-1], NewErrorBlock(msg.Err, m.styles), last)
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	return m, m.Input.Focus()
}

func (m Model) cyclePersonality() Model {
	ps := persona.Personalities()
	idx := 0
	for i, p := range ps {
		if p.Name == m.session.Personality.Name {
			idx = i
			break
		}
	}
	next := ps[(idx+1)%len(ps)]

	// Switching personalities discards the conversation.
	m.session.SelectPersonality(next)
	m.err = nil
	m.Input.Placeholder = chatPlaceholder(next)
	m = m.rebuildBlocks()
	m.Viewport.SetContent(m.renderContent())
	return m
}

func (m Model) cycleModel() Model {
	ms := persona.Models()
	idx := 0
	for i, id := range ms {
		if id == m.session.Model {
			idx = i
			break
		}
	}
	m.session.SelectModel(ms[(idx+1)%len(ms)])
	return m
}

// rebuildBlocks recreates the block list from the session transcript.
func (m Model) rebuildBlocks() Model {
	m.blocks = nil
	for _, msg := range m.session.Transcript {
		switch msg.Role {
		case persona.RoleUser:
			m.blocks = append(m.blocks, NewUserMessageBlock(msg.Content, m.styles))
		case persona.RoleAssistant:
			m.blocks = append(m.blocks, NewAssistantMessageBlock(msg.Content, m.theme))
		}
	}
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.keyGate {
		return m.styles.Error.Render("Enter your Groq API key to start chatting") +
			m.styles.Muted.Render(" (get one at https://console.groq.com/)")
	}
	if m.running {
		return m.spin.View() + m.styles.Muted.Render(fmt.Sprintf("%s is thinking...", m.session.Personality.Name))
	}
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}

	stats := m.session.Stats()
	selection := m.styles.Accent.Render(fmt.Sprintf("%s %s", m.session.Personality.Icon, m.session.Personality.Name))
	detail := fmt.Sprintf(" · %s · %d messages · Enter to send, ^P personality, ^O model, ^L clear, Ctrl+C to quit",
		m.session.Model, stats.UserMessages+stats.AssistantMessages)
	return selection + m.styles.Muted.Render(detail)
}
