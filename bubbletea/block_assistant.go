package bubbletea

import (
	"github.com/personachat/persona"
	"github.com/personachat/persona/markdown"
)

var _ MessageBlock = (*AssistantMessageBlock)(nil)

// AssistantMessageBlock renders a complete assistant reply as ANSI-styled
// markdown. Replies arrive whole (requests are non-streaming), so the
// render is cached per width.
type AssistantMessageBlock struct {
	text    string
	theme   persona.Theme
	byWidth map[int]string
}

// NewAssistantMessageBlock creates a block for an assistant reply.
func NewAssistantMessageBlock(text string, theme persona.Theme) *AssistantMessageBlock {
	return &AssistantMessageBlock{
		text:    text,
		theme:   theme,
		byWidth: make(map[int]string),
	}
}

func (b *AssistantMessageBlock) View(width int) string {
	if width <= 0 {
		return ""
	}
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := markdown.Render(b.text, width, b.theme)
	b.byWidth[width] = rendered
	return rendered
}
