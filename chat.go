// Package persona holds the domain types and conversation manager for an
// AI personality chat: role-tagged messages, the fixed personality set,
// session state, sliding-window request assembly, and the turn
// orchestrator that talks to a completion backend.
package persona

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Fixed generation parameters for every request.
const (
	RequestTemperature = 0.7
	RequestMaxTokens   = 1024
)

// Fallback replies appended to the transcript when a turn fails, so an
// assistant entry always follows a user entry.
const (
	FallbackError   = "Sorry, I encountered an error processing your request."
	FallbackTimeout = "Request timed out. Please try again."
)

// Chat orchestrates conversation turns between a Session and a Completer.
type Chat struct {
	completer Completer
	logger    zerolog.Logger
}

// ChatOption configures a Chat.
type ChatOption func(*Chat)

// WithLogger sets the logger used for per-turn debug logging.
func WithLogger(logger zerolog.Logger) ChatOption {
	return func(c *Chat) { c.logger = logger }
}

// NewChat creates a Chat with the given completion backend.
func NewChat(completer Completer, opts ...ChatOption) *Chat {
	c := &Chat{
		completer: completer,
		logger:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Send executes one conversation turn: it appends text as a user message,
// sends the windowed transcript prefixed with the personality's system
// prompt to the backend, and appends the reply.
//
// On failure the turn is still terminal: exactly one assistant message
// carrying a fixed fallback reply is appended, and the error is returned
// alongside it so the caller can surface it inline. There is no retry.
//
// An empty Session.APIKey is a precondition failure: Send returns
// ErrMissingAPIKey without touching the transcript or the backend.
func (c *Chat) Send(ctx context.Context, session *Session, text string) (Message, error) {
	if session.APIKey == "" {
		return Message{}, ErrMissingAPIKey
	}

	session.AppendUser(text)

	temp := RequestTemperature
	req := Request{
		Model:       session.Model,
		APIKey:      session.APIKey,
		Messages:    AssembleRequest(session.Transcript, session.Personality),
		MaxTokens:   RequestMaxTokens,
		Temperature: &temp,
	}

	c.logger.Debug().
		Str("session", session.ID).
		Str("personality", session.Personality.Name).
		Str("model", session.Model).
		Int("messages", len(req.Messages)).
		Msg("sending completion request")

	start := time.Now()
	reply, err := c.completer.Complete(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("session", session.ID).
			Dur("elapsed", time.Since(start)).
			Msg("completion failed")
		return session.AppendAssistant(fallbackFor(err)), err
	}

	c.logger.Debug().
		Str("session", session.ID).
		Dur("elapsed", time.Since(start)).
		Int("reply_len", len(reply)).
		Msg("completion succeeded")

	return session.AppendAssistant(reply), nil
}

// fallbackFor maps a completion error to the fixed reply text shown in
// place of the assistant's answer. Timeouts get their own message; every
// other failure (bad status, transport, parsing) gets the generic one.
func fallbackFor(err error) string {
	if errors.Is(err, ErrTimeout) {
		return FallbackTimeout
	}
	return FallbackError
}
