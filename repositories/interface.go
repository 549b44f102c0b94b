package repositories

import (
	"context"

	"starwars-api/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
}

type PlanetRepository interface {
	GetByID(ctx context.Context, id uint) (*entities.Planet, error)
	GetAll(ctx context.Context) ([]entities.Planet, error)
}

type PersonRepository interface {
	GetByID(ctx context.Context, id uint) (*entities.Person, error)
	GetAll(ctx context.Context) ([]entities.Person, error)
}

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entities.Favorite) error
	GetByUserID(ctx context.Context, userID uint) ([]entities.Favorite, error)
	FindPlanet(ctx context.Context, userID, planetID uint) (*entities.Favorite, error)
	FindPerson(ctx context.Context, userID, personID uint) (*entities.Favorite, error)
	// DeletePlanet and DeletePerson report how many rows were removed.
	DeletePlanet(ctx context.Context, userID, planetID uint) (int64, error)
	DeletePerson(ctx context.Context, userID, personID uint) (int64, error)
}
