package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/starwars-blog/catalogapi/models"
	"gorm.io/gorm"
)

// PlanetRepository handles database operations for the planets table
type PlanetRepository struct {
	DB *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{DB: db}
}

func (r *PlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	err := r.DB.WithContext(ctx).Create(planet).Error
	if err != nil {
		return fmt.Errorf("failed to create planet %s: %w", planet.Name, err)
	}
	return nil
}

func (r *PlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	var planet models.Planet
	err := r.DB.WithContext(ctx).First(&planet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get planet by ID %d: %w", id, err)
	}
	return &planet, nil
}

func (r *PlanetRepository) ListAll(ctx context.Context) ([]models.Planet, error) {
	planets := []models.Planet{}
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&planets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	return planets, nil
}

func (r *PlanetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.DB, &models.Planet{}, id)
}
