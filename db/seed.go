package db

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"gorm.io/gorm/clause"

	"starwars-api/entities"
	"starwars-api/logging"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData is the reference catalog of planets and people.
type SeedData struct {
	Planets []entities.Planet `yaml:"planets"`
	People  []entities.Person `yaml:"people"`
}

// LoadSeed parses the catalog at path, or the embedded one when path is empty.
func LoadSeed(path string) (*SeedData, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// Seed inserts the catalog rows that are not present yet, matched by name.
// It returns how many planets and people were inserted.
func Seed(ctx context.Context, database Database, data *SeedData) (int64, int64, error) {
	tx := database.GetDB().WithContext(ctx)

	// copies keep caller ids untouched so the same data can be seeded twice
	planetRows := make([]entities.Planet, len(data.Planets))
	for i, p := range data.Planets {
		p.ID = 0
		planetRows[i] = p
	}
	personRows := make([]entities.Person, len(data.People))
	for i, p := range data.People {
		p.ID = 0
		personRows[i] = p
	}

	var planets, people int64
	if len(planetRows) > 0 {
		res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&planetRows)
		if res.Error != nil {
			return 0, 0, fmt.Errorf("seed planets: %w", res.Error)
		}
		planets = res.RowsAffected
	}
	if len(personRows) > 0 {
		res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&personRows)
		if res.Error != nil {
			return 0, 0, fmt.Errorf("seed people: %w", res.Error)
		}
		people = res.RowsAffected
	}

	logging.Infof(ctx, "seeded %d planets and %d people", planets, people)
	return planets, people, nil
}
