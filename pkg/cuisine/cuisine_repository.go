package cuisine

import (
	"context"

	"cookbook-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CuisineRepository interface {
		CreateCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		GetCuisineByID(ctx context.Context, id string) (*entities.Cuisine, error)
		GetCuisineByName(ctx context.Context, name string) (*entities.Cuisine, error)
		GetCuisines(ctx context.Context, status string, page, limit int) ([]*entities.Cuisine, int64, error)
		UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		DeleteCuisineCascade(ctx context.Context, id uuid.UUID) error
	}

	cuisineRepository struct {
		db *gorm.DB
	}
)

func NewCuisineRepository(db *gorm.DB) CuisineRepository {
	return &cuisineRepository{db: db}
}

func (r *cuisineRepository) CreateCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	return r.db.WithContext(ctx).Create(cuisine).Error
}

func (r *cuisineRepository) GetCuisineByID(ctx context.Context, id string) (*entities.Cuisine, error) {
	var cuisine entities.Cuisine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cuisine).Error; err != nil {
		return nil, err
	}
	return &cuisine, nil
}

func (r *cuisineRepository) GetCuisineByName(ctx context.Context, name string) (*entities.Cuisine, error) {
	var cuisine entities.Cuisine
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&cuisine).Error; err != nil {
		return nil, err
	}
	return &cuisine, nil
}

func (r *cuisineRepository) GetCuisines(ctx context.Context, status string, page, limit int) ([]*entities.Cuisine, int64, error) {
	var cuisines []*entities.Cuisine
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Cuisine{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("name asc").
		Find(&cuisines).Error; err != nil {
		return nil, 0, err
	}

	return cuisines, count, nil
}

func (r *cuisineRepository) UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	return r.db.WithContext(ctx).Save(cuisine).Error
}

// DeleteCuisineCascade executes the cuisine deletion plan in one
// transaction, never touching the recipes themselves.
func (r *cuisineRepository) DeleteCuisineCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range entities.CuisineDeletePlan() {
			if err := tx.Where(step.Column+" = ?", id).Delete(step.Model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
