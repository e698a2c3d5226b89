// Package mock provides test doubles for persona interfaces using
// function fields.
package mock

import (
	"context"

	"github.com/personachat/persona"
)

// Interface compliance check.
var _ persona.Completer = (*Completer)(nil)

// Completer is a test double for persona.Completer.
// Set CompleteFn before calling Complete.
type Completer struct {
	CompleteFn func(ctx context.Context, req persona.Request) (string, error)
}

// Complete delegates to CompleteFn.
func (c *Completer) Complete(ctx context.Context, req persona.Request) (string, error) {
	return c.CompleteFn(ctx, req)
}
