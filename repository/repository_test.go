package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/config"
	"github.com/starwars-blog/catalogapi/database"
	"github.com/starwars-blog/catalogapi/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Config{DatabasePath: filepath.Join(t.TempDir(), "catalog.db"), MaxOpenConns: 8}
	db, err := database.InitGormDB(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrateModels(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, IsActive: true}
	require.NoError(t, user.SetPassword("secret"))
	require.NoError(t, NewGormUserRepository(db).Create(testContext(t), user))
	return user
}

func tatooine() *models.Planet {
	return &models.Planet{Name: "Tatooine", Description: "desert", Galaxy: "SW", Population: 200000, Gravity: "1", Image: "url"}
}

func TestPersonRepository_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)
	ctx := testContext(t)

	luke := &models.Person{Name: "Luke Skywalker", Age: 19, Gender: "male", Height: 172, Weight: 77, Image: "url", PlanetOfBirth: "Tatooine"}
	leia := &models.Person{Name: "Leia Organa", Age: 19, Gender: "female", Height: 150, Weight: 49, Image: "url", PlanetOfBirth: "Alderaan"}
	require.NoError(t, repo.Create(ctx, luke))
	require.NoError(t, repo.Create(ctx, leia))
	assert.NotZero(t, luke.ID)
	assert.Greater(t, leia.ID, luke.ID)

	got, err := repo.GetByID(ctx, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, *luke, *got)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Luke Skywalker", all[0].Name)
	assert.Equal(t, "Leia Organa", all[1].Name)

	ok, err := repo.Exists(ctx, leia.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPersonRepository_GetByIDNotFound(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	_, err := repo.GetByID(testContext(t), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ok, err := repo.Exists(testContext(t), 404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlanetRepository_CreateGetList(t *testing.T) {
	repo := NewPlanetRepository(newTestDB(t))
	ctx := testContext(t)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	planet := tatooine()
	require.NoError(t, repo.Create(ctx, planet))

	got, err := repo.GetByID(ctx, planet.ID)
	require.NoError(t, err)
	assert.Equal(t, *planet, *got)

	_, err = repo.GetByID(ctx, planet.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := testContext(t)

	han := seedUser(t, db, "han@falcon.io")

	got, err := repo.GetByEmail(ctx, "han@falcon.io")
	require.NoError(t, err)
	assert.Equal(t, han.ID, got.ID)
	assert.True(t, got.CheckPassword("secret"))

	_, err = repo.GetByEmail(ctx, "greedo@cantina.io")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Create(ctx, &models.User{Email: "han@falcon.io", PasswordHash: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestFavouriteRepository_AddPlanetIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := testContext(t)
	user := seedUser(t, db, "luke@rebels.org")
	planet := tatooine()
	require.NoError(t, NewPlanetRepository(db).Create(ctx, planet))

	repo := NewFavouriteRepository(db)

	fav, created, err := repo.AddPlanet(ctx, user.ID, planet.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, fav.ID)

	again, created, err := repo.AddPlanet(ctx, user.ID, planet.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, fav.ID, again.ID)

	favs, err := repo.ListPlanetsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, planet.ID, favs[0].PlanetID)
}

func TestFavouriteRepository_AddPeopleScopedByUser(t *testing.T) {
	db := newTestDB(t)
	ctx := testContext(t)
	luke := seedUser(t, db, "luke@rebels.org")
	leia := seedUser(t, db, "leia@rebels.org")
	person := &models.Person{Name: "Chewbacca", Age: 200, Gender: "male", Height: 228, Weight: 112, Image: "url", PlanetOfBirth: "Kashyyyk"}
	require.NoError(t, NewPersonRepository(db).Create(ctx, person))

	repo := NewFavouriteRepository(db)
	_, created, err := repo.AddPeople(ctx, luke.ID, person.ID)
	require.NoError(t, err)
	assert.True(t, created)
	_, created, err = repo.AddPeople(ctx, leia.ID, person.ID)
	require.NoError(t, err)
	assert.True(t, created)

	lukes, err := repo.ListPeopleByUser(ctx, luke.ID)
	require.NoError(t, err)
	require.Len(t, lukes, 1)
	assert.Equal(t, luke.ID, lukes[0].UserID)

	nobody, err := repo.ListPeopleByUser(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

func TestFavouriteRepository_ConcurrentAddStoresOneRow(t *testing.T) {
	db := newTestDB(t)
	ctx := testContext(t)
	user := seedUser(t, db, "rey@jakku.net")
	planet := tatooine()
	require.NoError(t, NewPlanetRepository(db).Create(ctx, planet))
	repo := NewFavouriteRepository(db)

	const workers = 8
	var wg sync.WaitGroup
	createdCount := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := repo.AddPlanet(ctx, user.ID, planet.ID)
			assert.NoError(t, err)
			createdCount <- created
		}()
	}
	wg.Wait()
	close(createdCount)

	n := 0
	for created := range createdCount {
		if created {
			n++
		}
	}
	assert.Equal(t, 1, n)

	favs, err := repo.ListPlanetsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

// testContext stands in for testing.T.Context (Go 1.24+): the returned
// context is canceled when the test finishes.
func testContext(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
