package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tesso57/headlines/internal/infrastructure/config"
)

// KeyCmd stores the API key so later runs use live mode.
type KeyCmd struct {
	Key string `arg:"" optional:"" help:"NewsAPI key. Omit to clear the stored key."`

	out io.Writer
}

// Run saves the key.
func (c *KeyCmd) Run(g *Globals) error {
	store, err := config.Load(g.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := store.SetAPIKey(c.Key); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	if store.Settings.NewsAPI.Live() {
		_, _ = fmt.Fprintf(out, "Saved API key to %s\n", store.Path())
	} else {
		_, _ = fmt.Fprintf(out, "Cleared API key in %s; headlines will show sample articles\n", store.Path())
	}
	return nil
}
