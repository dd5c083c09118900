package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spektr-org/launchdash/binder"
	"github.com/spektr-org/launchdash/internal/logging"
	"github.com/spektr-org/launchdash/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(g *globalFlags) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		Long: `Loads the dataset, builds both views and serves them over HTTP.

Control events posted to /api/site and /api/payload-range are applied one at
a time; each response carries the views that were recomputed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ds, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			logger := logging.New("serve")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hub := server.NewHub()
			b := binder.New(ds, binder.WithObserver(hub.Observe))
			q := binder.NewQueue(b, cfg.QueueSize)

			gin.SetMode(gin.ReleaseMode)
			srv := &http.Server{
				Addr:              cfg.Listen,
				Handler:           server.NewHandlers(q, ds, cfg.Slider, hub).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			eg, egCtx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				return q.Run(egCtx)
			})
			eg.Go(func() error {
				logger.Info("listening", "addr", cfg.Listen)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			eg.Go(func() error {
				<-egCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				logger.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			})
			return eg.Wait()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	return cmd
}
