package usecases

import (
	"context"
	"fmt"

	"starwars-api/entities"
	"starwars-api/repositories"
)

type FavoriteUseCase struct {
	FavoriteRepo repositories.FavoriteRepository
	Catalog      *CatalogUseCase
}

func NewFavoriteUseCase(favoriteRepo repositories.FavoriteRepository, catalog *CatalogUseCase) *FavoriteUseCase {
	return &FavoriteUseCase{FavoriteRepo: favoriteRepo, Catalog: catalog}
}

// ListForUser returns the user's favorites; none at all is a not-found.
func (uc *FavoriteUseCase) ListForUser(ctx context.Context, userID uint) ([]entities.Favorite, error) {
	favorites, err := uc.FavoriteRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if len(favorites) == 0 {
		return nil, ErrNoFavorites
	}
	return favorites, nil
}

func (uc *FavoriteUseCase) AddPlanet(ctx context.Context, userID, planetID uint) (*entities.Favorite, error) {
	planet, err := uc.Catalog.GetPlanet(ctx, planetID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.FavoriteRepo.FindPlanet(ctx, userID, planetID); err == nil {
		return nil, ErrFavoriteExists
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("check favorite: %w", err)
	}

	favorite := &entities.Favorite{UserID: userID, PlanetID: &planet.ID}
	if err := uc.FavoriteRepo.Create(ctx, favorite); err != nil {
		if isDuplicate(err) {
			return nil, ErrFavoriteExists
		}
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	favorite.Planet = planet
	return favorite, nil
}

func (uc *FavoriteUseCase) AddPerson(ctx context.Context, userID, personID uint) (*entities.Favorite, error) {
	person, err := uc.Catalog.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.FavoriteRepo.FindPerson(ctx, userID, personID); err == nil {
		return nil, ErrFavoriteExists
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("check favorite: %w", err)
	}

	favorite := &entities.Favorite{UserID: userID, PersonID: &person.ID}
	if err := uc.FavoriteRepo.Create(ctx, favorite); err != nil {
		if isDuplicate(err) {
			return nil, ErrFavoriteExists
		}
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	favorite.Person = person
	return favorite, nil
}

func (uc *FavoriteUseCase) RemovePlanet(ctx context.Context, userID, planetID uint) error {
	removed, err := uc.FavoriteRepo.DeletePlanet(ctx, userID, planetID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if removed == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (uc *FavoriteUseCase) RemovePerson(ctx context.Context, userID, personID uint) error {
	removed, err := uc.FavoriteRepo.DeletePerson(ctx, userID, personID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if removed == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
