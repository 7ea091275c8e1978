package nutrition

import (
	"context"

	"cookbook-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NutritionRepository interface {
		CreateNutritionFact(ctx context.Context, fact *entities.NutritionFact) error
		GetNutritionFactByID(ctx context.Context, id string) (*entities.NutritionFact, error)
		GetNutritionFactByName(ctx context.Context, name string) (*entities.NutritionFact, error)
		GetNutritionFacts(ctx context.Context, status string, page, limit int) ([]*entities.NutritionFact, int64, error)
		UpdateNutritionFact(ctx context.Context, fact *entities.NutritionFact) error
		DeleteNutritionFactCascade(ctx context.Context, id uuid.UUID) error
	}

	nutritionRepository struct {
		db *gorm.DB
	}
)

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) CreateNutritionFact(ctx context.Context, fact *entities.NutritionFact) error {
	return r.db.WithContext(ctx).Create(fact).Error
}

func (r *nutritionRepository) GetNutritionFactByID(ctx context.Context, id string) (*entities.NutritionFact, error) {
	var fact entities.NutritionFact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fact).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

func (r *nutritionRepository) GetNutritionFactByName(ctx context.Context, name string) (*entities.NutritionFact, error) {
	var fact entities.NutritionFact
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&fact).Error; err != nil {
		return nil, err
	}
	return &fact, nil
}

func (r *nutritionRepository) GetNutritionFacts(ctx context.Context, status string, page, limit int) ([]*entities.NutritionFact, int64, error) {
	var facts []*entities.NutritionFact
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.NutritionFact{})
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
		Find(&facts).Error; err != nil {
		return nil, 0, err
	}

	return facts, count, nil
}

func (r *nutritionRepository) UpdateNutritionFact(ctx context.Context, fact *entities.NutritionFact) error {
	return r.db.WithContext(ctx).Save(fact).Error
}

// DeleteNutritionFactCascade executes the fact deletion plan in one
// transaction, never touching the recipes themselves.
func (r *nutritionRepository) DeleteNutritionFactCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range entities.NutritionFactDeletePlan() {
			if err := tx.Where(step.Column+" = ?", id).Delete(step.Model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
