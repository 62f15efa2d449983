package entity

import "github.com/shopspring/decimal"

// Recipe mirrors a recipe served by the recipe API.
type Recipe struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
	PrepTimeMinutes    int      `json:"prepTimeMinutes"`
	CookTimeMinutes    int      `json:"cookTimeMinutes"`
	Servings           int      `json:"servings"`
	Difficulty         string   `json:"difficulty"`
	Cuisine            string   `json:"cuisine"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
	Tags               []string `json:"tags"`
	Image              string   `json:"image"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	MealType           []string `json:"mealType"`
}

// Product mirrors a grocery product served by the recipe API.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Thumbnail   string          `json:"thumbnail"`
}

type MealCategory struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Emoji string `json:"emoji"`
}

const MealCategoryAll = "all"

var MealCategories = []MealCategory{
	{Label: "All Meals", Value: MealCategoryAll, Emoji: "🍽"},
	{Label: "Breakfast", Value: "breakfast", Emoji: "🥞"},
	{Label: "Lunch", Value: "lunch", Emoji: "🥗"},
	{Label: "Dinner", Value: "dinner", Emoji: "🍛"},
	{Label: "Snacks", Value: "snacks", Emoji: "🍿"},
	{Label: "Vegan", Value: "vegan", Emoji: "🥬"},
	{Label: "High Protein", Value: "high-protein", Emoji: "🍗"},
}
