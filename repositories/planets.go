package repositories

import (
	"context"

	"starwars-api/db"
	"starwars-api/entities"
)

type planetRepository struct {
	db db.Database
}

func NewPlanetRepository(database db.Database) PlanetRepository {
	return &planetRepository{db: database}
}

func (r *planetRepository) GetByID(ctx context.Context, id uint) (*entities.Planet, error) {
	var planet entities.Planet
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&planet).Error
	if err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *planetRepository) GetAll(ctx context.Context) ([]entities.Planet, error) {
	var planets []entities.Planet
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&planets).Error
	return planets, err
}
