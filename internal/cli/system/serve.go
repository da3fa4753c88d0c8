package system

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"daytrack/internal/cli"
	"daytrack/internal/logger"
	"daytrack/internal/server"
)

type ServeCmd struct {
	Addr string `help:"Listen address." default:"127.0.0.1:7600" env:"DAYTRACK_ADDR"`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	// A local .env can override the listen address without shell exports.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env file", "error", err)
	}
	if addr := os.Getenv("DAYTRACK_ADDR"); addr != "" {
		c.Addr = addr
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(ctx.Store, c.Addr)
	return srv.ListenAndServe(runCtx)
}
