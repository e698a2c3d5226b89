package bubbletea_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/personachat/persona"
	bt "github.com/personachat/persona/bubbletea"
)

func testStyles() bt.Styles {
	return bt.NewStyles(persona.DefaultTheme())
}

func TestUserMessageBlock(t *testing.T) {
	t.Parallel()

	b := bt.NewUserMessageBlock("how do I braise short ribs?", testStyles())
	view := b.View(80)

	assert.Contains(t, view, ">")
	assert.Contains(t, view, "how do I braise short ribs?")
}

func TestUserMessageBlock_Wraps(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 20)
	b := bt.NewUserMessageBlock(strings.TrimSpace(long), testStyles())
	view := b.View(30)

	assert.Greater(t, len(strings.Split(view, "\n")), 1)
}

func TestAssistantMessageBlock(t *testing.T) {
	t.Parallel()

	b := bt.NewAssistantMessageBlock("Here is **bold** advice.", persona.DefaultTheme())
	view := b.View(80)

	assert.Contains(t, view, "bold")
	assert.Contains(t, view, "advice.")
}

func TestAssistantMessageBlock_CachesByWidth(t *testing.T) {
	t.Parallel()

	b := bt.NewAssistantMessageBlock("Some reply text that wraps when narrow.", persona.DefaultTheme())

	wide := b.View(80)
	narrow := b.View(20)
	assert.NotEqual(t, wide, narrow)

	// Repeated renders at a seen width are stable.
	assert.Equal(t, wide, b.View(80))
	assert.Equal(t, narrow, b.View(20))
}

func TestAssistantMessageBlock_ZeroWidth(t *testing.T) {
	t.Parallel()

	b := bt.NewAssistantMessageBlock("text", persona.DefaultTheme())
	assert.Equal(t, "", b.View(0))
}

func TestErrorBlock(t *testing.T) {
	t.Parallel()

	b := bt.NewErrorBlock(errors.New("unexpected status 429: Rate limit reached"), testStyles())
	view := b.View(80)

	assert.Contains(t, view, "Error:")
	assert.Contains(t, view, "Rate limit reached")
}
