package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/starwars-blog/catalogapi/database"
	"github.com/starwars-blog/catalogapi/handlers"
)

func (a *App) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Long: `Start the HTTP API on PORT. The schema is migrated before the listener
opens. SIGINT or SIGTERM drain in-flight requests for up to SHUTDOWN_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
}

func (a *App) runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			a.logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	server := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      handlers.NewRouter(ctx, a.cfg, db, a.logger),
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}
	return a.serve(ctx, server, ln)
}

// serve blocks until ctx is cancelled or the listener fails, then shuts the
// server down within the configured timeout.
func (a *App) serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		a.logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	a.logger.Info().Msg("server stopped gracefully")
	return nil
}
