// Package commands holds the starwars-api command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"starwars-api/confs"
	"starwars-api/db"
	"starwars-api/logging"
)

// NewRootCommand builds the command tree. Running it bare starts the server.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "starwars-api",
		Short: "REST API over Star Wars planets, people and user favorites",
		Long: `starwars-api serves a read-only catalog of planets and people and lets
registered users keep a list of favorites.

Configuration is read from the environment (and a .env file when present):
  PORT, DATABASE_URL, SQLITE_PATH, JWT_SECRET, JWT_TTL, LOG_LEVEL,
  GIN_MODE, OTEL_SERVICE_NAME, OTEL_EXPORTER_OTLP_ENDPOINT, CORS_ALLOW_ORIGINS`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	root.Flags().Bool("seed", false, "Load the embedded catalog before serving")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newRoutesCommand(),
	)
	return root
}

// bootstrap resolves configuration and opens a migrated store.
func bootstrap() (*confs.Config, db.Database, error) {
	cfg, err := confs.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logging.SetLevel(cfg.LogLevel)

	database, err := db.Connect(db.Options{
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(database); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return cfg, database, nil
}
