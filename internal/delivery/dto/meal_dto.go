package dto

import "calorie-planner/internal/domain/entity"

type MealFilter struct {
	Category string
	Search   string
}

type MealListResponse struct {
	Meals    []entity.Recipe `json:"meals"`
	Total    int             `json:"total"`
	Category string          `json:"category"`
	Search   string          `json:"search,omitempty"`
}

type MealDetailResponse struct {
	Meal          entity.Recipe `json:"meal"`
	Portions      int           `json:"portions"`
	TotalCalories int           `json:"total_calories"`
}

type FeaturedGroceriesResponse struct {
	Products []entity.Product `json:"products"`
}
