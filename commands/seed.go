package commands

import (
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load planets and people into the database",
		Long: `Seed inserts every planet and person from the catalog file that is not
already stored, matched by name. Without --file the catalog compiled into
the binary is used. Running it twice is harmless.`,
		Example: `  starwars-api seed
  starwars-api seed --file ./catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")

			_, database, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close()

			return seedCatalog(cmd.Context(), database, path)
		},
	}
	cmd.Flags().StringP("file", "f", "", "YAML catalog with planets and people")
	return cmd
}
