package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/productscience/clubstaking/app"
	"github.com/productscience/clubstaking/internal/server/public"
)

const flagListen = "listen"

// ServeCmd serves the ledger read-only over HTTP until interrupted. Messages
// cannot be delivered while it runs since it holds the database.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the committed ledger over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(hc hostContext, a *app.App) error {
				addr, _ := cmd.Flags().GetString(flagListen)
				if addr == "" {
					addr = hc.config.ListenAddr
				}

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				server := public.NewServer(a, hc.logger)
				errCh := make(chan error, 1)
				go func() {
					hc.logger.Info("serving ledger", "addr", addr, "height", a.LastHeight())
					errCh <- server.Start(addr)
				}()

				select {
				case err := <-errCh:
					if errors.Is(err, http.ErrServerClosed) {
						return nil
					}
					return err
				case <-ctx.Done():
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})
		},
	}
	cmd.Flags().String(flagListen, "", "Listen address (defaults to listen_addr in config.yaml)")
	return cmd
}
