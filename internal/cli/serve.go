package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelterpaws/cattery/internal/auth"
	"github.com/shelterpaws/cattery/internal/genai"
	"github.com/shelterpaws/cattery/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long: `Serve exposes the catalog API: locations, cat records, volunteer
login, media streaming, description generation, and Prometheus metrics.
Mutations require a session from POST /api/login.

Example:
  cattery serve
  cattery serve --addr :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	sessions := auth.NewSessions(auth.NewStaticVerifier(cfg.Volunteer), cfg.SessionTTL)
	describer := genai.NewDescriber(cfg.GenAI)
	srv := server.New(service, sessions, describer, slog.Default())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(serveAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
