// Command persona is a terminal chat client for Groq-hosted models with
// fixed assistant personalities.
//
// Usage:
//
//	GROQ_API_KEY=gsk-... persona [flags]
//
// Flags:
//
//	-model string    Model ID (default: llama-3.1-70b-versatile)
//	-api-key string  Groq API key (overrides GROQ_API_KEY)
//	-base-url string API base URL (for testing against a local server)
//	-log string      Path to a debug log file
//
// Without a key from the flag, the environment, or a .env file, the UI
// prompts for one before chat entry is unlocked.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/personachat/persona"
	bt "github.com/personachat/persona/bubbletea"
	"github.com/personachat/persona/groq"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "persona: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		model   = flag.String("model", "", "Model ID (default: "+persona.DefaultModel+")")
		apiKey  = flag.String("api-key", "", "Groq API key (overrides GROQ_API_KEY)")
		baseURL = flag.String("base-url", "", "API base URL (for testing against a local server)")
		logPath = flag.String("log", "", "Path to a debug log file")
	)
	flag.Parse()

	// A .env file is optional; it only supplies environment defaults.
	_ = godotenv.Load()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	// An empty key is not fatal: the TUI gates chat entry on it.
	key := resolveAPIKey(*apiKey, os.Getenv("GROQ_API_KEY"))

	opts := []groq.Option{groq.WithLogger(logger)}
	if *baseURL != "" {
		opts = append(opts, groq.WithBaseURL(*baseURL))
	}
	client := groq.New(key, opts...)
	chat := persona.NewChat(client, persona.WithLogger(logger))

	session := persona.NewSession()
	session.APIKey = key
	if *model != "" {
		session.SelectModel(*model)
	}

	logger.Info().
		Str("session", session.ID).
		Str("model", session.Model).
		Str("personality", session.Personality.Name).
		Msg("session started")

	m := bt.New(chat.Send, session, persona.DefaultTheme())
	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	logger.Info().Str("session", session.ID).Msg("session ended")
	return nil
}

// resolveAPIKey picks the key to use: the explicit flag overrides the
// environment.
func resolveAPIKey(flagKey, envKey string) string {
	if flagKey != "" {
		return flagKey
	}
	return envKey
}
