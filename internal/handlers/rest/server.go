package rest

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Server wraps the Fiber application serving the wallet API.
type Server struct {
	app  *fiber.App
	addr string
	ops  WalletOps
}

// NewServer builds the HTTP server and wires every route. Send and swap
// require a session; the read-only routes are keyed by address alone.
func NewServer(addr string, ops WalletOps, authenticator Authenticator) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "solvault",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:  app,
		addr: addr,
		ops:  ops,
	}

	app.Use(requestID())
	app.Get("/health", s.health)

	api := app.Group("/api")
	api.Get("/tokens", s.tokens)
	api.Get("/transactions", s.transactions)

	authed := api.Group("", sessionAuth(authenticator))
	authed.Post("/send", s.send)
	authed.Post("/swap", s.swap)

	return s
}

// Listen starts serving and blocks until the server stops.
func (s *Server) Listen() error {
	return s.app.Listen(s.addr)
}

// Shutdown gracefully stops the server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
