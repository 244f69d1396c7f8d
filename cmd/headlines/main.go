// Command headlines is a terminal reader for NewsAPI top headlines.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// Globals are flags shared by every command.
type Globals struct {
	Config string `help:"Config file path (default: $HOME/.config/headlines/config.yaml)." type:"path"`
	APIKey string `name:"api-key" help:"NewsAPI key for this run. Overrides the config file."`
	Mock   bool   `help:"Read the bundled fixture even when an API key is configured."`
}

// CLI is the command tree.
type CLI struct {
	Globals

	Run  RunCmd  `cmd:"" default:"1" help:"Open the headlines reader."`
	List ListCmd `cmd:"" help:"Print headlines for every category and exit."`
	Key  KeyCmd  `cmd:"" help:"Save a NewsAPI key to the config file."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("headlines"),
		kong.Description("Top headlines from NewsAPI in your terminal. Without an API key the bundled sample articles are shown."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run(&cli.Globals)
	stop()
	kctx.FatalIfErrorf(err)
}
