package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quirkhelper/sidecar/cmd/sidecar/cmdutil"
	mcpcmder "github.com/quirkhelper/sidecar/cmd/sidecar/mcp"
	servecmder "github.com/quirkhelper/sidecar/cmd/sidecar/serve"
	summarizecmder "github.com/quirkhelper/sidecar/cmd/sidecar/summarize"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const rootLongDesc string = `sidecar is a local helper service for the dealer-dashboard browser extension.

It turns dashboard snapshots into short summaries and drafts replies to
lead conversations, optionally with an OpenAI-compatible model.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sidecar",
		Short:        "Local summary and reply helper for the browser extension",
		Long:         rootLongDesc,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String(cmdutil.ConfigFlag, "", "Path to a TOML config file (default: ./sidecar.toml if present)")
	cmd.PersistentFlags().Bool(cmdutil.DebugFlag, false, "Enable debug logging")

	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(summarizecmder.NewSummarizeCmd())
	cmd.AddCommand(mcpcmder.NewMCPCmd(version))

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
