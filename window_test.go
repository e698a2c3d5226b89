package persona_test

import (
	"fmt"
	"testing"

	"github.com/personachat/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTranscript(n int) []persona.Message {
	out := make([]persona.Message, 0, n)
	for i := 0; i < n; i++ {
		role := persona.RoleUser
		if i%2 == 1 {
			role = persona.RoleAssistant
		}
		out = append(out, persona.Message{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}
	return out
}

func TestAssembleRequest_WindowLength(t *testing.T) {
	t.Parallel()

	p := persona.DefaultPersonality()

	for _, n := range []int{0, 1, 2, 19, 20, 21, 40, 100} {
		n := n
		t.Run(fmt.Sprintf("transcript of %d", n), func(t *testing.T) {
			t.Parallel()

			transcript := makeTranscript(n)
			got := persona.AssembleRequest(transcript, p)

			want := n
			if want > persona.HistoryWindow {
				want = persona.HistoryWindow
			}
			require.Len(t, got, want+1)

			// Element 0 is always the synthesized system message.
			assert.Equal(t, persona.RoleSystem, got[0].Role)
			assert.Equal(t, p.SystemPrompt, got[0].Content)

			// The rest equals the transcript tail in original order.
			tail := transcript[len(transcript)-want:]
			for i, msg := range tail {
				assert.Equal(t, msg.Role, got[i+1].Role)
				assert.Equal(t, msg.Content, got[i+1].Content)
			}
		})
	}
}

func TestAssembleRequest_DropsOldestBeyondWindow(t *testing.T) {
	t.Parallel()

	transcript := makeTranscript(25)
	got := persona.AssembleRequest(transcript, persona.DefaultPersonality())

	require.Len(t, got, persona.HistoryWindow+1)
	// msg-0 through msg-4 fall out of the window; msg-5 is the oldest kept.
	assert.Equal(t, "msg-5", got[1].Content)
	assert.Equal(t, "msg-24", got[len(got)-1].Content)
}

func TestAssembleRequest_DoesNotMutateTranscript(t *testing.T) {
	t.Parallel()

	transcript := makeTranscript(3)
	persona.AssembleRequest(transcript, persona.DefaultPersonality())

	require.Len(t, transcript, 3)
	assert.Equal(t, "msg-0", transcript[0].Content)
}

func TestAssembleRequest_PersonalityPromptSelectsSystemMessage(t *testing.T) {
	t.Parallel()

	for _, p := range persona.Personalities() {
		got := persona.AssembleRequest(nil, p)
		require.Len(t, got, 1)
		assert.Equal(t, p.SystemPrompt, got[0].Content)
	}
}
