package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/starwars-blog/catalogapi/models"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for the people table
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

// Create inserts person in a single statement and fills in its ID
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	err := r.DB.WithContext(ctx).Create(person).Error
	if err != nil {
		return fmt.Errorf("failed to create person %s: %w", person.Name, err)
	}
	return nil
}

// GetByID returns gorm.ErrRecordNotFound unwrapped when no row matches
func (r *PersonRepository) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := r.DB.WithContext(ctx).First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get person by ID %d: %w", id, err)
	}
	return &person, nil
}

// ListAll retrieves all people in storage order
func (r *PersonRepository) ListAll(ctx context.Context) ([]models.Person, error) {
	people := []models.Person{}
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

func (r *PersonRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.DB, &models.Person{}, id)
}

// exists counts rows of model's table with the given primary key.
func exists(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existence of %T %d: %w", model, id, err)
	}
	return count > 0, nil
}
