package repository

import (
	"context"

	"github.com/starwars-blog/catalogapi/models"
)

// UserRepositoryInterface defines the methods for user data operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	ListAll(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// PersonRepositoryInterface defines the methods for people data operations
type PersonRepositoryInterface interface {
	Create(ctx context.Context, person *models.Person) error
	GetByID(ctx context.Context, id uint) (*models.Person, error)
	ListAll(ctx context.Context) ([]models.Person, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// PlanetRepositoryInterface defines the methods for planet data operations
type PlanetRepositoryInterface interface {
	Create(ctx context.Context, planet *models.Planet) error
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	ListAll(ctx context.Context) ([]models.Planet, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// FavouriteRepositoryInterface defines the methods for the per-user favorite join tables.
// The Add methods report created=false when the pair was already stored.
type FavouriteRepositoryInterface interface {
	ListPlanetsByUser(ctx context.Context, userID uint) ([]models.FavouritePlanet, error)
	AddPlanet(ctx context.Context, userID, planetID uint) (fav *models.FavouritePlanet, created bool, err error)
	ListPeopleByUser(ctx context.Context, userID uint) ([]models.FavouritePeople, error)
	AddPeople(ctx context.Context, userID, peopleID uint) (fav *models.FavouritePeople, created bool, err error)
}
