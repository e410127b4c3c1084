package summarizecmder

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quirkhelper/sidecar/pkg/payload"
	"github.com/quirkhelper/sidecar/pkg/summary"
)

const summarizeLongDesc string = `Summarize a dashboard payload without running the server.

Reads a JSON body (optionally wrapped in {"payload": ...}) from a file
or from stdin and prints the summary the extension panel would show.

Examples:
  sidecar summarize snapshot.json
  cat snapshot.json | sidecar summarize --inline
  sidecar summarize --plain snapshot.json`

const summarizeShortDesc string = "Summarize a dashboard payload"

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true)
)

type summarizeCommander struct {
	inline bool
	plain  bool
}

func NewSummarizeCmd() *cobra.Command {
	cmder := &summarizeCommander{}

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: summarizeShortDesc,
		Long:  summarizeLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd, args)
		},
	}

	cmd.Flags().BoolVar(&cmder.inline, "inline", false, "Render the single-line \" | \" variant")
	cmd.Flags().BoolVar(&cmder.plain, "plain", false, "Print without a frame")

	return cmd
}

func (c *summarizeCommander) run(_ context.Context, cmd *cobra.Command, args []string) error {
	body, err := c.read(cmd, args)
	if err != nil {
		return err
	}

	p := payload.Decode(body)
	text := c.render(p)

	if c.plain {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	lines := strings.SplitN(text, "\n", 2)
	lines[0] = headerStyle.Render(lines[0])
	fmt.Fprintln(cmd.OutOrStdout(), frameStyle.Render(strings.Join(lines, "\n")))
	return nil
}

func (c *summarizeCommander) read(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}
		return body, nil
	}

	body, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", args[0], err)
	}
	return body, nil
}

func (c *summarizeCommander) render(p payload.Payload) string {
	if note := strings.TrimSpace(p.String("note")); note != "" {
		return note
	}
	s := summary.FromPayload(p)
	if c.inline {
		return s.Inline()
	}
	return s.Block()
}
