package servecmder

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quirkhelper/sidecar/cmd/sidecar/cmdutil"
	"github.com/quirkhelper/sidecar/pkg/dashboard"
	"github.com/quirkhelper/sidecar/server"
)

const serveLongDesc string = `Run the sidecar HTTP server.

The browser extension posts dashboard snapshots and conversations to
the sidecar, which answers with summaries and suggested replies.
Suggestions use the OpenAI API when OPENAI_API_KEY is set and a
template reply otherwise.

Examples:
  sidecar serve
  sidecar serve --listen 127.0.0.1:9000
  sidecar serve --config ./sidecar.toml --debug`

const serveShortDesc string = "Run the sidecar HTTP server"

const shutdownTimeout = 10 * time.Second

type serveCommander struct {
	listenAddr string
}

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.listenAddr, "listen", "l", "", "Address to listen on (overrides config)")

	return cmd
}

func (c *serveCommander) run(ctx context.Context, cmd *cobra.Command) error {
	cfg, log, err := cmdutil.Load(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if c.listenAddr != "" {
		cfg.Server.ListenAddr = c.listenAddr
	}

	srv, err := server.New(server.Config{
		ListenAddr:     cfg.Server.ListenAddr,
		AllowedOrigins: cfg.Origins(),
	}, cmdutil.NewGenerator(cfg, log), dashboard.NewLogSink(log), log)
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
