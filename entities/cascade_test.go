package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dependents(steps []DeleteStep) []any {
	models := make([]any, 0, len(steps)-1)
	for _, step := range steps[:len(steps)-1] {
		models = append(models, step.Model)
	}
	return models
}

func TestRecipeDeletePlanDependentsBeforeOwner(t *testing.T) {
	steps := RecipeDeletePlan()
	require.NotEmpty(t, steps)

	last := steps[len(steps)-1]
	assert.IsType(t, &Recipe{}, last.Model)
	assert.Equal(t, "id", last.Column)

	for _, step := range steps[:len(steps)-1] {
		assert.Equal(t, "recipe_id", step.Column)
	}
	assert.ElementsMatch(t, []any{
		&Review{},
		&RecipeIngredientQty{},
		&RecipeCuisine{},
		&RecipeNutrition{},
	}, dependents(steps))
}

func TestUserDeletePlanDependentsBeforeOwner(t *testing.T) {
	steps := UserDeletePlan()
	require.NotEmpty(t, steps)

	last := steps[len(steps)-1]
	assert.IsType(t, &User{}, last.Model)
	assert.Equal(t, "id", last.Column)

	for _, step := range steps[:len(steps)-1] {
		assert.Equal(t, "user_id", step.Column)
	}
	assert.ElementsMatch(t, []any{&Review{}}, dependents(steps))
}

func TestReferenceEntityDeletePlans(t *testing.T) {
	tests := []struct {
		name      string
		steps     []DeleteStep
		owner     any
		link      any
		linkColumn string
	}{
		{"ingredient", IngredientDeletePlan(), &Ingredient{}, &RecipeIngredientQty{}, "ingredient_id"},
		{"cuisine", CuisineDeletePlan(), &Cuisine{}, &RecipeCuisine{}, "cuisine_id"},
		{"nutrition fact", NutritionFactDeletePlan(), &NutritionFact{}, &RecipeNutrition{}, "nutrition_fact_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.steps, 2)
			assert.IsType(t, tt.link, tt.steps[0].Model)
			assert.Equal(t, tt.linkColumn, tt.steps[0].Column)
			assert.IsType(t, tt.owner, tt.steps[1].Model)
			assert.Equal(t, "id", tt.steps[1].Column)
		})
	}
}
