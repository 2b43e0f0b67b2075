package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/desertthunder/tdx/internal/server"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Serve runs the task sync server until the context is cancelled.
//
// The server is stateless beyond a single in-memory [server.TaskVault]; its
// contents are discarded on shutdown.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	addr := r.config.Addr()
	if port := cmd.Int("port"); port > 0 {
		cfg := *r.config
		cfg.Server.Port = port
		addr = cfg.Addr()
	}

	vault := server.NewTaskVault()
	handler := server.NewSyncHandler(vault, r.logger)

	router := server.NewBasicRouter()
	router.Use(
		server.Logging(r.logger),
		server.CORS(),
		server.RateLimit(rate.NewLimiter(rate.Limit(50), 100)),
	)
	router.Handler(handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	r.logger.Info("sync server listening", "addr", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	r.logger.Info("sync server stopped", "discarded", vault.Len())
	return nil
}
