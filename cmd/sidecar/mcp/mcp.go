package mcpcmder

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/quirkhelper/sidecar/cmd/sidecar/cmdutil"
)

const mcpLongDesc string = `Serve the sidecar tools over the Model Context Protocol.

Exposes "summarize" and "suggest" to MCP clients on stdin/stdout,
using the same configuration as the HTTP server. Logs go to stderr.

Examples:
  sidecar mcp
  sidecar mcp --config ./sidecar.toml`

const mcpShortDesc string = "Serve sidecar tools over MCP stdio"

type mcpCommander struct {
	version string
}

func NewMCPCmd(version string) *cobra.Command {
	cmder := &mcpCommander{version: version}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: mcpShortDesc,
		Long:  mcpLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	return cmd
}

func (c *mcpCommander) run(ctx context.Context, cmd *cobra.Command) error {
	cfg, log, err := cmdutil.Load(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	srv := NewServer(cmdutil.NewGenerator(cfg, log), c.version, log)
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}
