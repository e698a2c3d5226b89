package persona

import (
	"context"
	"fmt"
)

// Completer is a strategy pattern interface for completion backends.
//
// Complete performs one synchronous request/response cycle and returns the
// reply text. Implementations classify timeouts by wrapping ErrTimeout so
// callers can branch with errors.Is.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request carries one assembled message list plus model selection and
// generation parameters. The backend uses its own defaults when fields are
// zero/nil.
type Request struct {
	Model       string // model ID; empty = backend default
	APIKey      string // secret key; empty = backend default key
	Messages    []Message
	MaxTokens   int      // 0 = backend default
	Temperature *float64 // nil = backend default
}

// Validate checks universal constraints on Request.
// Backend implementations may apply additional validation.
func (r Request) Validate() error {
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d: %w", r.MaxTokens, ErrValidation)
	}
	if len(r.Messages) == 0 {
		return fmt.Errorf("messages must not be empty: %w", ErrValidation)
	}
	return nil
}
