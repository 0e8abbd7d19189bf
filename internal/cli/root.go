// Package cli wires the nameboard commands together with cobra. All settings
// come from the environment through internal/config; flags only cover what
// is specific to one invocation.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/entrypoint"
)

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the web board.
func NewRootCommand(version, commit string) *cobra.Command {
	serve := newServeCommand(version)

	root := &cobra.Command{
		Use:   "nameboard",
		Short: "Alphabetical board for a names REST API",
		Long: "NameBoard groups the names of a REST collection by initial and lets you\n" +
			"add, rename, like and delete them from a browser or a terminal.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(
		serve,
		NewAPICommand(version).Cobra(),
		NewTUICommand().Cobra(),
		NewListCommand().Cobra(),
	)
	return root
}

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web board (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(cmd.Context(), config.NewConfig(), version)
		},
	}
}
