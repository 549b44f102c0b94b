package repositories

import (
	"context"

	"starwars-api/db"
	"starwars-api/entities"
)

type personRepository struct {
	db db.Database
}

func NewPersonRepository(database db.Database) PersonRepository {
	return &personRepository{db: database}
}

func (r *personRepository) GetByID(ctx context.Context, id uint) (*entities.Person, error) {
	var person entities.Person
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) GetAll(ctx context.Context) ([]entities.Person, error) {
	var people []entities.Person
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&people).Error
	return people, err
}
