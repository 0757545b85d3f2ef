package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds how long in-flight requests may run once a stop
// signal arrives.
const shutdownTimeout = 15 * time.Second

// serveCommand returns a CLI command that starts the wallet HTTP API and
// blocks until the process is interrupted or the listener fails.
//
// Usage example:
//
//	solvault serve
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(srv HTTPServer) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the wallet HTTP API serving transfers, swaps, balances and history.",
		Usage:       "Runs the HTTP server. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Listen()
			}()

			select {
			case err := <-errCh:
				return err
			case <-quit:
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
