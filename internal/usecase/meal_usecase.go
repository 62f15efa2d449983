package usecase

import (
	"context"
	"errors"
	"strings"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/domain/entity"
	"calorie-planner/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const (
	groceriesCategory = "groceries"
	featuredLimit     = 4
)

// MaxPortions caps the portion count a meal detail is scaled to.
const MaxPortions = 100

var ErrMealNotFound = errors.New("meal not found")

type MealUsecase interface {
	ListMeals(ctx context.Context, filter dto.MealFilter) (*dto.MealListResponse, error)
	Categories() []entity.MealCategory
	GetMeal(ctx context.Context, id int, portions int) (*dto.MealDetailResponse, error)
	FeaturedGroceries(ctx context.Context) (*dto.FeaturedGroceriesResponse, error)
}

type mealUsecase struct {
	log     *logrus.Logger
	catalog repository.MealCatalog
}

func NewMealUsecase(log *logrus.Logger, catalog repository.MealCatalog) MealUsecase {
	return &mealUsecase{
		log:     log,
		catalog: catalog,
	}
}

func (u *mealUsecase) ListMeals(ctx context.Context, filter dto.MealFilter) (*dto.MealListResponse, error) {
	recipes, err := u.catalog.ListRecipes(ctx)
	if err != nil {
		u.log.Warnf("Failed to list recipes: %+v", err)
		return nil, err
	}

	category := strings.ToLower(strings.TrimSpace(filter.Category))
	if category == "" {
		category = entity.MealCategoryAll
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	meals := make([]entity.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if category != entity.MealCategoryAll && !inCategory(recipe, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(recipe.Name), search) {
			continue
		}
		meals = append(meals, recipe)
	}

	return &dto.MealListResponse{
		Meals:    meals,
		Total:    len(meals),
		Category: category,
		Search:   filter.Search,
	}, nil
}

func (u *mealUsecase) Categories() []entity.MealCategory {
	return entity.MealCategories
}

// GetMeal returns the recipe with its calories scaled to portions, clamped
// to [1, MaxPortions].
func (u *mealUsecase) GetMeal(ctx context.Context, id int, portions int) (*dto.MealDetailResponse, error) {
	recipe, err := u.catalog.GetRecipe(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to get recipe %d: %+v", id, err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrMealNotFound
	}

	portions = min(max(portions, 1), MaxPortions)

	return &dto.MealDetailResponse{
		Meal:          *recipe,
		Portions:      portions,
		TotalCalories: recipe.CaloriesPerServing * portions,
	}, nil
}

func (u *mealUsecase) FeaturedGroceries(ctx context.Context) (*dto.FeaturedGroceriesResponse, error) {
	products, err := u.catalog.ListProductsByCategory(ctx, groceriesCategory)
	if err != nil {
		u.log.Warnf("Failed to list groceries: %+v", err)
		return nil, err
	}

	if len(products) > featuredLimit {
		products = products[:featuredLimit]
	}
	return &dto.FeaturedGroceriesResponse{Products: products}, nil
}

func inCategory(recipe entity.Recipe, category string) bool {
	for _, tag := range recipe.Tags {
		if strings.ToLower(tag) == category {
			return true
		}
	}
	for _, mealType := range recipe.MealType {
		if strings.ToLower(mealType) == category {
			return true
		}
	}
	return false
}
