package entities

type (
	// DeleteStep is one step of an ordered deletion plan: remove every row
	// of Model whose Column matches the doomed entity's key.
	DeleteStep struct {
		Model  any
		Column string
	}
)

// RecipeDeletePlan orders a recipe's dependents ahead of the recipe itself,
// so no review or association row referencing it can survive the recipe.
// The same plan serves single-recipe deletes and the per-user sweep.
func RecipeDeletePlan() []DeleteStep {
	return []DeleteStep{
		{Model: &Review{}, Column: "recipe_id"},
		{Model: &RecipeIngredientQty{}, Column: "recipe_id"},
		{Model: &RecipeCuisine{}, Column: "recipe_id"},
		{Model: &RecipeNutrition{}, Column: "recipe_id"},
		{Model: &Recipe{}, Column: "id"},
	}
}

// UserDeletePlan covers what a user owns besides recipes; callers run the
// user's recipes through RecipeDeletePlan before these steps.
func UserDeletePlan() []DeleteStep {
	return []DeleteStep{
		{Model: &Review{}, Column: "user_id"},
		{Model: &User{}, Column: "id"},
	}
}

// IngredientDeletePlan removes the quantity rows, never the recipes using
// them.
func IngredientDeletePlan() []DeleteStep {
	return []DeleteStep{
		{Model: &RecipeIngredientQty{}, Column: "ingredient_id"},
		{Model: &Ingredient{}, Column: "id"},
	}
}

func CuisineDeletePlan() []DeleteStep {
	return []DeleteStep{
		{Model: &RecipeCuisine{}, Column: "cuisine_id"},
		{Model: &Cuisine{}, Column: "id"},
	}
}

func NutritionFactDeletePlan() []DeleteStep {
	return []DeleteStep{
		{Model: &RecipeNutrition{}, Column: "nutrition_fact_id"},
		{Model: &NutritionFact{}, Column: "id"},
	}
}
