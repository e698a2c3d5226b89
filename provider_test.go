package persona_test

import (
	"testing"

	"github.com/personachat/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() persona.Request {
		return persona.Request{
			Model:    "llama-3.1-8b-instant",
			Messages: []persona.Message{{Role: persona.RoleUser, Content: "hi"}},
		}
	}

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid().Validate())
	})

	t.Run("temperature bounds", func(t *testing.T) {
		t.Parallel()

		for _, temp := range []float64{-0.1, 2.1} {
			req := valid()
			req.Temperature = &temp
			err := req.Validate()
			require.ErrorIs(t, err, persona.ErrValidation)
		}

		temp := 0.7
		req := valid()
		req.Temperature = &temp
		assert.NoError(t, req.Validate())
	})

	t.Run("negative max tokens", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.MaxTokens = -1
		assert.ErrorIs(t, req.Validate(), persona.ErrValidation)
	})

	t.Run("empty messages", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Messages = nil
		assert.ErrorIs(t, req.Validate(), persona.ErrValidation)
	})
}
