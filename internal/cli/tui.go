package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/entrypoint"
)

type TUICommand struct {
	LogFile string
}

func NewTUICommand() *TUICommand {
	return &TUICommand{}
}

func (cmd *TUICommand) Cobra() *cobra.Command {
	c := &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the board in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return entrypoint.RunTUI(c.Context(), config.NewConfig(), cmd.LogFile)
		},
	}

	c.Flags().StringVar(&cmd.LogFile, "log-file", "", "Append logs to this file (logs are discarded otherwise)")
	return c
}
