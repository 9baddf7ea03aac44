package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Cicchelli/portifoliowebstephan/internal/config"
	"github.com/Cicchelli/portifoliowebstephan/internal/content"
	"github.com/Cicchelli/portifoliowebstephan/internal/metrics"
	"github.com/Cicchelli/portifoliowebstephan/internal/sshserve"
	"github.com/Cicchelli/portifoliowebstephan/internal/tui"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP, and optionally over SSH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().Int("port", 0, "HTTP port (overrides PORT)")
	cmd.Flags().String("ssh-addr", "", "SSH listen address, e.g. :2222 (overrides SSH_ADDR)")

	return cmd
}

// serve runs the HTTP server, and the SSH server when configured, until ctx
// is cancelled or one of them fails.
func serve(ctx context.Context, cfg config.Config) error {
	m := metrics.New()

	router, err := newRouter(cfg, m)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var sshRuntime *sshserve.Runtime
	if cfg.SSHAddr != "" {
		sshRuntime, err = sshserve.New(sshserve.Config{
			Addr:        cfg.SSHAddr,
			HostKeyPath: cfg.HostKeyPath,
			IdleTimeout: cfg.SSHIdleTimeout,
		}, tui.Options{Profile: content.Default(), Reveal: revealOptions(cfg)}, m)
		if err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("level=info event=startup surface=http addr=%s reveal_threshold=%g reveal_duration=%s", srv.Addr, cfg.RevealThreshold, cfg.RevealDuration)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if sshRuntime != nil {
		g.Go(func() error { return sshRuntime.Run(ctx) })
	}

	if err := g.Wait(); err != nil {
		log.Printf("level=error event=shutdown err=%v", err)
		return err
	}
	log.Printf("level=info event=shutdown")
	return nil
}
