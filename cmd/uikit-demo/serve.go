package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/networkteam/uikit/demo"
	"github.com/networkteam/uikit/query"
)

const shutdownTimeout = 5 * time.Second

type serveFlags struct {
	listen     string
	baseURL    string
	pathPrefix string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if flags.listen != "" {
				cfg.Listen = flags.listen
			}
			if flags.baseURL != "" {
				cfg.Products.BaseURL = flags.baseURL
			}
			if flags.pathPrefix != "" {
				cfg.PathPrefix = flags.pathPrefix
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&flags.listen, "listen", "l", "", "Listen address (host:port)")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", "", "Base URL of the product API")
	cmd.Flags().StringVar(&flags.pathPrefix, "path-prefix", "", "Path prefix to mount the demo at")

	return cmd
}

func serve(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	client, err := query.NewClient(query.ClientOptions{
		BaseURL: cfg.Products.BaseURL,
		Timeout: cfg.Products.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	handler, err := demo.NewHandler(
		demo.WithPathPrefix(cfg.PathPrefix),
		demo.WithQueryClient(client),
		demo.WithKeepUnusedDataFor(cfg.Products.KeepUnusedDataFor),
		demo.WithSessionIdleTimeout(cfg.Sessions.IdleTimeout),
		demo.WithMaxSessions(cfg.Sessions.Max),
		demo.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer handler.Close()

	mux := http.NewServeMux()
	if cfg.PathPrefix == "" {
		mux.Handle("/", handler)
	} else {
		mux.Handle(cfg.PathPrefix+"/", http.StripPrefix(cfg.PathPrefix, handler))
		mux.Handle("/{$}", http.RedirectHandler(cfg.PathPrefix+"/", http.StatusFound))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", cfg.Listen), slog.String("pathPrefix", cfg.PathPrefix))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	// Close sessions first so open event streams end.
	handler.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
