package db

import (
	"fmt"

	"starwars-api/entities"
	"starwars-api/logging"
)

// Migrate creates or updates every table the API uses.
func Migrate(database Database) error {
	logging.Logger().Info("Running database migrations...")
	if err := database.GetDB().AutoMigrate(
		&entities.User{},
		&entities.Planet{},
		&entities.Person{},
		&entities.Favorite{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logging.Logger().Info("Database migrations completed successfully!")
	return nil
}
