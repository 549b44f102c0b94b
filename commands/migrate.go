package commands

import (
	"github.com/spf13/cobra"

	"starwars-api/logging"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close()

			logging.Logger().Info("schema is up to date")
			return nil
		},
	}
}
