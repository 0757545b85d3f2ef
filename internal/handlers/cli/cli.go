package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

// HTTPServer is the serving surface the serve command controls.
type HTTPServer interface {
	Listen() error
	Shutdown(ctx context.Context) error
}

// Run initializes and executes the solvault CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Starts the wallet HTTP API.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, srv HTTPServer) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solvault",
		Description:           "Command-line interface for running the Solvault wallet service.",
		Usage:                 "solvault [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(srv),
		},
	}

	return app.Run(ctx, os.Args)
}
