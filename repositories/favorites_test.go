package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starwars-api/db/dbtest"
	"starwars-api/entities"
)

func uintPtr(v uint) *uint { return &v }

func TestFavoriteRepositoryLifecycle(t *testing.T) {
	database := dbtest.New(t)
	ctx := context.Background()
	gdb := database.GetDB()

	user := entities.User{Username: "luke", Password: "x", IsActive: true}
	require.NoError(t, gdb.Create(&user).Error)
	planet := entities.Planet{Name: "Tatooine", Description: "d", Climate: "arid", Population: "1", OrbitalPeriod: "1", RotationPeriod: "1", Diameter: "1"}
	require.NoError(t, gdb.Create(&planet).Error)
	person := entities.Person{Name: "Yoda", Height: "66", Mass: "17", HairColor: "white"}
	require.NoError(t, gdb.Create(&person).Error)

	repo := NewFavoriteRepository(database)

	require.NoError(t, repo.Create(ctx, &entities.Favorite{UserID: user.ID, PlanetID: uintPtr(planet.ID)}))
	require.NoError(t, repo.Create(ctx, &entities.Favorite{UserID: user.ID, PersonID: uintPtr(person.ID)}))

	favorites, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	require.NotNil(t, favorites[0].Planet)
	assert.Equal(t, "Tatooine", favorites[0].Planet.Name)
	assert.Nil(t, favorites[0].Person)
	require.NotNil(t, favorites[1].Person)
	assert.Equal(t, "Yoda", favorites[1].Person.Name)

	found, err := repo.FindPerson(ctx, user.ID, person.ID)
	require.NoError(t, err)
	assert.Equal(t, favorites[1].ID, found.ID)

	// the composite unique index rejects a second (user, planet) row
	assert.ErrorIs(t, repo.Create(ctx, &entities.Favorite{UserID: user.ID, PlanetID: uintPtr(planet.ID)}), gorm.ErrDuplicatedKey)

	removed, err := repo.DeletePlanet(ctx, user.ID, planet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.DeletePlanet(ctx, user.ID, planet.ID)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestUserRepositoryLookup(t *testing.T) {
	database := dbtest.New(t)
	ctx := context.Background()
	repo := NewUserRepository(database)

	user := &entities.User{Username: "leia", Password: "hash", IsActive: true}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byName, err := repo.GetByUsername(ctx, "leia")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	assert.ErrorIs(t, repo.Create(ctx, &entities.User{Username: "leia", Password: "other"}), gorm.ErrDuplicatedKey)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
