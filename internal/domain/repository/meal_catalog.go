package repository

import (
	"context"

	"calorie-planner/internal/domain/entity"
)

// MealCatalog serves recipes and groceries from the external recipe API.
type MealCatalog interface {
	ListRecipes(ctx context.Context) ([]entity.Recipe, error)
	// GetRecipe returns nil, nil for unknown ids.
	GetRecipe(ctx context.Context, id int) (*entity.Recipe, error)
	ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)
}
