package usecases

import (
	"context"
	"fmt"

	"starwars-api/entities"
	"starwars-api/repositories"
)

// CatalogUseCase serves the read-only planet and person reference data.
type CatalogUseCase struct {
	PlanetRepo repositories.PlanetRepository
	PersonRepo repositories.PersonRepository
}

func NewCatalogUseCase(planetRepo repositories.PlanetRepository, personRepo repositories.PersonRepository) *CatalogUseCase {
	return &CatalogUseCase{PlanetRepo: planetRepo, PersonRepo: personRepo}
}

func (uc *CatalogUseCase) ListPlanets(ctx context.Context) ([]entities.Planet, error) {
	planets, err := uc.PlanetRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

func (uc *CatalogUseCase) GetPlanet(ctx context.Context, id uint) (*entities.Planet, error) {
	planet, err := uc.PlanetRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlanetNotFound
		}
		return nil, fmt.Errorf("get planet %d: %w", id, err)
	}
	return planet, nil
}

func (uc *CatalogUseCase) ListPeople(ctx context.Context) ([]entities.Person, error) {
	people, err := uc.PersonRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

func (uc *CatalogUseCase) GetPerson(ctx context.Context, id uint) (*entities.Person, error) {
	person, err := uc.PersonRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("get person %d: %w", id, err)
	}
	return person, nil
}
