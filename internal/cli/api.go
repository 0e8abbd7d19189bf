package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/entrypoint"
)

type APICommand struct {
	Version      string
	DatabasePath string
	Seed         bool
}

func NewAPICommand(version string) *APICommand {
	return &APICommand{Version: version}
}

func (cmd *APICommand) Cobra() *cobra.Command {
	c := &cobra.Command{
		Use:   "api",
		Short: "Run the reference names REST API on SQLite",
		Long: "Serves GET/POST /names and GET/PUT/DELETE /names/:id from a local SQLite file.\n" +
			"Listens on API_HOST:API_PORT; DEMO_MODE makes it read-only and seeds it.",
		Example: "  nameboard api --seed\n  nameboard api --db /tmp/names.db",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if cmd.DatabasePath != "" {
				cfg.Database.Path = cmd.DatabasePath
			}
			return entrypoint.RunAPI(c.Context(), cfg, cmd.Version, cmd.Seed)
		},
	}

	c.Flags().StringVar(&cmd.DatabasePath, "db", "", "SQLite file (overrides DATABASE_PATH)")
	c.Flags().BoolVar(&cmd.Seed, "seed", false, "Fill an empty database with sample names")
	return c
}
