package persona_test

import (
	"testing"

	"github.com/personachat/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	t.Parallel()

	s := persona.NewSession()

	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.Transcript)
	assert.Equal(t, persona.DefaultPersonality().Name, s.Personality.Name)
	assert.Equal(t, persona.DefaultModel, s.Model)
	assert.Empty(t, s.APIKey)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestNewSession_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := persona.NewSession()
	b := persona.NewSession()
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_AppendOrdering(t *testing.T) {
	t.Parallel()

	s := persona.NewSession()
	s.AppendUser("hello")
	s.AppendAssistant("hi there")

	require.Len(t, s.Transcript, 2)
	assert.Equal(t, persona.RoleUser, s.Transcript[0].Role)
	assert.Equal(t, "hello", s.Transcript[0].Content)
	assert.Equal(t, persona.RoleAssistant, s.Transcript[1].Role)
	assert.Equal(t, "hi there", s.Transcript[1].Content)
}

func TestSession_SelectPersonality(t *testing.T) {
	t.Parallel()

	t.Run("switching clears the transcript", func(t *testing.T) {
		t.Parallel()

		s := persona.NewSession()
		s.AppendUser("what is 2+2?")
		s.AppendAssistant("4")

		chef, ok := persona.PersonalityByName("Chef")
		require.True(t, ok)
		s.SelectPersonality(chef)

		assert.Empty(t, s.Transcript)
		assert.Equal(t, "Chef", s.Personality.Name)
	})

	t.Run("re-selecting the current personality keeps history", func(t *testing.T) {
		t.Parallel()

		s := persona.NewSession()
		s.AppendUser("hello")
		s.SelectPersonality(s.Personality)

		assert.Len(t, s.Transcript, 1)
	})
}

func TestSession_SelectModelKeepsHistory(t *testing.T) {
	t.Parallel()

	s := persona.NewSession()
	s.AppendUser("hello")
	s.AppendAssistant("hi")

	s.SelectModel("mixtral-8x7b-32768")

	assert.Equal(t, "mixtral-8x7b-32768", s.Model)
	assert.Len(t, s.Transcript, 2)
}

func TestSession_ClearTranscript(t *testing.T) {
	t.Parallel()

	s := persona.NewSession()
	chef, ok := persona.PersonalityByName("Chef")
	require.True(t, ok)
	s.SelectPersonality(chef)
	s.SelectModel("gemma2-9b-it")
	s.AppendUser("how do I dice an onion?")
	s.AppendAssistant("carefully")

	s.ClearTranscript()

	assert.Empty(t, s.Transcript)
	assert.Equal(t, "Chef", s.Personality.Name)
	assert.Equal(t, "gemma2-9b-it", s.Model)
}

func TestSession_Stats(t *testing.T) {
	t.Parallel()

	s := persona.NewSession()
	assert.Equal(t, persona.Stats{}, s.Stats())

	s.AppendUser("one")
	s.AppendAssistant("two")
	s.AppendUser("three")

	assert.Equal(t, persona.Stats{UserMessages: 2, AssistantMessages: 1}, s.Stats())
}
