package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/nameboard/internal/board"
	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/entrypoint"
	"github.com/mrlokans/nameboard/internal/exporters"
)

const (
	formatText     = "text"
	formatMarkdown = "md"
	formatXLSX     = "xlsx"
)

type ListCommand struct {
	URL    string
	Format string
	Output string
}

func NewListCommand() *ListCommand {
	return &ListCommand{Format: formatText}
}

func (cmd *ListCommand) Cobra() *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "Print the grouped board once and exit",
		Example: "  nameboard list\n" +
			"  nameboard list --format md --output names.md\n" +
			"  nameboard list --format xlsx --output names.xlsx",
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Run(c.Context(), config.NewConfig(), c.OutOrStdout())
		},
	}

	c.Flags().StringVar(&cmd.URL, "url", "", "Names collection URL (overrides NAMES_API_URL)")
	c.Flags().StringVarP(&cmd.Format, "format", "f", formatText, "Output format: text, md or xlsx")
	c.Flags().StringVarP(&cmd.Output, "output", "o", "", "Write to this file instead of stdout")
	return c
}

func (cmd *ListCommand) Run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	exporter, err := cmd.exporter()
	if err != nil {
		return err
	}

	if cmd.URL != "" {
		cfg.NamesAPI.URL = cmd.URL
	}
	client := entrypoint.NewNamesClient(cfg, slog.Default(), nil)

	names, err := client.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch names from %s: %w", client.BaseURL(), err)
	}
	groups := board.GroupByLetter(names).Groups()

	out := stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if exporter == nil {
		return writeText(out, groups)
	}

	result, err := exporter.Export(out, groups)
	if err != nil {
		return err
	}
	if cmd.Output != "" {
		fmt.Fprintf(stdout, "Exported %d names in %d groups to %s\n",
			result.NamesProcessed, result.GroupsProcessed, cmd.Output)
	}
	return nil
}

// exporter returns nil for the plain text format.
func (cmd *ListCommand) exporter() (exporters.BoardExporter, error) {
	switch cmd.Format {
	case formatText, "":
		return nil, nil
	case formatMarkdown:
		return exporters.NewMarkdownExporter(), nil
	case formatXLSX:
		if cmd.Output == "" {
			return nil, errors.New("xlsx output needs --output")
		}
		return exporters.NewXLSXExporter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, md or xlsx)", cmd.Format)
	}
}

func writeText(w io.Writer, groups []board.Group) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "No names.")
		return err
	}
	for _, g := range groups {
		if _, err := fmt.Fprintln(w, g.Letter); err != nil {
			return err
		}
		for _, n := range g.Names {
			mark := ""
			if n.Liked {
				mark = " ♥"
			}
			if _, err := fmt.Fprintf(w, "  %s%s\n", n.FirstName, mark); err != nil {
				return err
			}
		}
	}
	return nil
}
