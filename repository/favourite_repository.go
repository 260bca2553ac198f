package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/starwars-blog/catalogapi/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavouriteRepository handles the favourite_planet and favourite_people join tables
type FavouriteRepository struct {
	DB *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) *FavouriteRepository {
	return &FavouriteRepository{DB: db}
}

func (r *FavouriteRepository) ListPlanetsByUser(ctx context.Context, userID uint) ([]models.FavouritePlanet, error) {
	favourites := []models.FavouritePlanet{}
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&favourites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favourite planets for user %d: %w", userID, err)
	}
	return favourites, nil
}

func (r *FavouriteRepository) AddPlanet(ctx context.Context, userID, planetID uint) (*models.FavouritePlanet, bool, error) {
	fav := &models.FavouritePlanet{UserID: userID, PlanetID: planetID}
	created, err := addFavourite(ctx, r.DB, "planet_id", userID, planetID, fav)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add planet %d to favourites of user %d: %w", planetID, userID, err)
	}
	return fav, created, nil
}

func (r *FavouriteRepository) ListPeopleByUser(ctx context.Context, userID uint) ([]models.FavouritePeople, error) {
	favourites := []models.FavouritePeople{}
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&favourites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favourite people for user %d: %w", userID, err)
	}
	return favourites, nil
}

func (r *FavouriteRepository) AddPeople(ctx context.Context, userID, peopleID uint) (*models.FavouritePeople, bool, error) {
	fav := &models.FavouritePeople{UserID: userID, PeopleID: peopleID}
	created, err := addFavourite(ctx, r.DB, "people_id", userID, peopleID, fav)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add person %d to favourites of user %d: %w", peopleID, userID, err)
	}
	return fav, created, nil
}

// addFavourite stores row unless the (user, target) pair already exists. The
// lookup only spares a write in the common case; the insert itself is
// ON CONFLICT DO NOTHING against the composite unique index, so a concurrent
// duplicate ends up with zero affected rows instead of a second record. When
// the pair exists row is overwritten with the stored record. row must be a
// pointer to an unsaved model.
func addFavourite(ctx context.Context, db *gorm.DB, targetColumn string, userID, targetID uint, row interface{}) (bool, error) {
	pred, args, err := sq.Eq{"user_id": userID, targetColumn: targetID}.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build favourite predicate: %w", err)
	}

	tx := db.WithContext(ctx)

	err = tx.Where(pred, args...).Take(row).Error
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, err
	}

	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(row)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// lost a race with an identical request
	if err := tx.Where(pred, args...).Take(row).Error; err != nil {
		return false, err
	}
	return false, nil
}
