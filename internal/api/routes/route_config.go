package routes

import (
	"cookbook-backend/internal/api/handlers"
	"cookbook-backend/internal/middleware"
	"cookbook-backend/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	CuisineHandler    handlers.CuisineHandler
	NutritionHandler  handlers.NutritionHandler
	ReviewHandler     handlers.ReviewHandler
	Middleware        middleware.Middleware
	Resolver          auth.Resolver
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.IdentityMiddleware(c.Resolver))
	c.Users()
	c.Recipes()
	c.Ingredients()
	c.Cuisines()
	c.NutritionFacts()
	c.Reviews()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		users.Get("/verify", c.UserHandler.VerifyEmail)
		users.Get("", c.UserHandler.GetUsers)
		users.Get("/:id", c.UserHandler.GetUser)
		users.Put("/:id", c.Middleware.AuthMiddleware(), c.UserHandler.UpdateUser)
		users.Delete("/:id", c.Middleware.AuthMiddleware(), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.Middleware.AuthMiddleware(), c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Put("/:id", c.Middleware.AuthMiddleware(), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(), c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/approve", c.Middleware.AuthMiddleware(), c.RecipeHandler.ApproveRecipe)
		recipes.Post("/:id/reject", c.Middleware.AuthMiddleware(), c.RecipeHandler.RejectRecipe)
		recipes.Post("/:id/image", c.Middleware.AuthMiddleware(), c.RecipeHandler.UploadRecipeImage)

		recipes.Get("/:id/ingredients", c.RecipeHandler.GetRecipeIngredients)
		recipes.Post("/:id/ingredients", c.Middleware.AuthMiddleware(), c.RecipeHandler.AddRecipeIngredient)
		recipes.Put("/:id/ingredients/:ingredientId", c.Middleware.AuthMiddleware(), c.RecipeHandler.UpdateRecipeIngredient)
		recipes.Delete("/:id/ingredients/:ingredientId", c.Middleware.AuthMiddleware(), c.RecipeHandler.RemoveRecipeIngredient)

		recipes.Post("/:id/cuisines", c.Middleware.AuthMiddleware(), c.RecipeHandler.AddRecipeCuisine)
		recipes.Delete("/:id/cuisines/:cuisineId", c.Middleware.AuthMiddleware(), c.RecipeHandler.RemoveRecipeCuisine)

		recipes.Post("/:id/nutrition", c.Middleware.AuthMiddleware(), c.RecipeHandler.AddRecipeNutrition)
		recipes.Delete("/:id/nutrition/:factId", c.Middleware.AuthMiddleware(), c.RecipeHandler.RemoveRecipeNutrition)

		recipes.Get("/:id/reviews", c.ReviewHandler.GetRecipeReviews)
		recipes.Post("/:id/reviews", c.Middleware.AuthMiddleware(), c.ReviewHandler.CreateReview)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Post("", c.Middleware.AuthMiddleware(), c.IngredientHandler.CreateIngredient)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredient)
		ingredients.Put("/:id", c.Middleware.AuthMiddleware(), c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.Middleware.AuthMiddleware(), c.IngredientHandler.DeleteIngredient)
		ingredients.Post("/:id/approve", c.Middleware.AuthMiddleware(), c.IngredientHandler.ApproveIngredient)
		ingredients.Post("/:id/reject", c.Middleware.AuthMiddleware(), c.IngredientHandler.RejectIngredient)
	}
}

func (c *Config) Cuisines() {
	cuisines := c.App.Group("/api/v1/cuisines")
	{
		cuisines.Get("", c.CuisineHandler.GetCuisines)
		cuisines.Post("", c.Middleware.AuthMiddleware(), c.CuisineHandler.CreateCuisine)
		cuisines.Get("/:id", c.CuisineHandler.GetCuisine)
		cuisines.Put("/:id", c.Middleware.AuthMiddleware(), c.CuisineHandler.UpdateCuisine)
		cuisines.Delete("/:id", c.Middleware.AuthMiddleware(), c.CuisineHandler.DeleteCuisine)
		cuisines.Post("/:id/approve", c.Middleware.AuthMiddleware(), c.CuisineHandler.ApproveCuisine)
		cuisines.Post("/:id/reject", c.Middleware.AuthMiddleware(), c.CuisineHandler.RejectCuisine)
	}
}

func (c *Config) NutritionFacts() {
	facts := c.App.Group("/api/v1/nutrition-facts")
	{
		facts.Get("", c.NutritionHandler.GetNutritionFacts)
		facts.Post("", c.Middleware.AuthMiddleware(), c.NutritionHandler.CreateNutritionFact)
		facts.Get("/:id", c.NutritionHandler.GetNutritionFact)
		facts.Put("/:id", c.Middleware.AuthMiddleware(), c.NutritionHandler.UpdateNutritionFact)
		facts.Delete("/:id", c.Middleware.AuthMiddleware(), c.NutritionHandler.DeleteNutritionFact)
		facts.Post("/:id/approve", c.Middleware.AuthMiddleware(), c.NutritionHandler.ApproveNutritionFact)
		facts.Post("/:id/reject", c.Middleware.AuthMiddleware(), c.NutritionHandler.RejectNutritionFact)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews")
	{
		reviews.Get("/:id", c.ReviewHandler.GetReview)
		reviews.Put("/:id", c.Middleware.AuthMiddleware(), c.ReviewHandler.UpdateReview)
		reviews.Delete("/:id", c.Middleware.AuthMiddleware(), c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
