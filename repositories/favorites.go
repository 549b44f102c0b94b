package repositories

import (
	"context"

	"gorm.io/gorm/clause"

	"starwars-api/db"
	"starwars-api/entities"
)

type favoriteRepository struct {
	db db.Database
}

func NewFavoriteRepository(database db.Database) FavoriteRepository {
	return &favoriteRepository{db: database}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	// referenced rows already exist; never upsert them
	return r.db.GetDB().WithContext(ctx).Omit(clause.Associations).Create(favorite).Error
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID uint) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.GetDB().WithContext(ctx).
		Preload("Planet").
		Preload("Person").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) FindPlanet(ctx context.Context, userID, planetID uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	err := r.db.GetDB().WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindPerson(ctx context.Context, userID, personID uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	err := r.db.GetDB().WithContext(ctx).
		Where("user_id = ? AND people_id = ?", userID, personID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) DeletePlanet(ctx context.Context, userID, planetID uint) (int64, error) {
	res := r.db.GetDB().WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Delete(&entities.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *favoriteRepository) DeletePerson(ctx context.Context, userID, personID uint) (int64, error) {
	res := r.db.GetDB().WithContext(ctx).
		Where("user_id = ? AND people_id = ?", userID, personID).
		Delete(&entities.Favorite{})
	return res.RowsAffected, res.Error
}
