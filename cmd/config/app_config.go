package config

import (
	"os"
	"time"

	"cookbook-backend/internal/api/handlers"
	"cookbook-backend/internal/api/routes"
	"cookbook-backend/internal/middleware"
	"cookbook-backend/internal/utils"
	"cookbook-backend/internal/utils/storage"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/cuisine"
	"cookbook-backend/pkg/ingredient"
	"cookbook-backend/pkg/jwt"
	"cookbook-backend/pkg/moderation"
	"cookbook-backend/pkg/nutrition"
	"cookbook-backend/pkg/recipe"
	"cookbook-backend/pkg/review"
	"cookbook-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	policy := moderation.DefaultPolicy

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	cuisineRepository := cuisine.NewCuisineRepository(db)
	nutritionRepository := nutrition.NewNutritionRepository(db)
	reviewRepository := review.NewReviewRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	resolver := auth.NewResolver(jwtService)
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, s3, policy)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, policy)
	cuisineService := cuisine.NewCuisineService(cuisineRepository, policy)
	nutritionService := nutrition.NewNutritionService(nutritionRepository, policy)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	cuisineHandler := handlers.NewCuisineHandler(cuisineService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		CuisineHandler:    cuisineHandler,
		NutritionHandler:  nutritionHandler,
		ReviewHandler:     reviewHandler,
		Middleware:        middlewares,
		Resolver:          resolver,
	}
	routesConfig.Setup()
	return app, nil
}
