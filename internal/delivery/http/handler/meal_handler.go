package handler

import (
	"net/http"
	"strconv"

	"calorie-planner/internal/delivery/dto"
	"calorie-planner/internal/usecase"
	"calorie-planner/pkg/response"

	"github.com/gorilla/mux"
)

type MealHandler struct {
	mealUsecase usecase.MealUsecase
}

func NewMealHandler(mealUsecase usecase.MealUsecase) *MealHandler {
	return &MealHandler{
		mealUsecase: mealUsecase,
	}
}

// ListMeals godoc
// @Summary List meals
// @Tags Meals
// @Produce json
// @Param category query string false "Category (all, breakfast, lunch, ...)"
// @Param search query string false "Name search"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /meals [get]
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	filter := dto.MealFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	meals, err := h.mealUsecase.ListMeals(r.Context(), filter)
	if err != nil {
		response.BadGateway(w, "Failed to load meals")
		return
	}

	response.Success(w, http.StatusOK, "Meals retrieved successfully", meals)
}

// ListCategories godoc
// @Summary List meal categories
// @Tags Meals
// @Produce json
// @Success 200 {object} response.Response
// @Router /meals/categories [get]
func (h *MealHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Categories retrieved successfully", h.mealUsecase.Categories())
}

// GetMeal godoc
// @Summary Get meal details
// @Tags Meals
// @Produce json
// @Param id path int true "Meal ID"
// @Param portions query int false "Number of portions"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /meals/{id} [get]
func (h *MealHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid meal ID")
		return
	}

	portions := 1
	if raw := r.URL.Query().Get("portions"); raw != "" {
		portions, err = strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid portions")
			return
		}
	}

	meal, err := h.mealUsecase.GetMeal(r.Context(), id, portions)
	if err != nil {
		switch err {
		case usecase.ErrMealNotFound:
			response.NotFound(w, "Meal not found")
		default:
			response.BadGateway(w, "Failed to load meal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Meal retrieved successfully", meal)
}

// FeaturedGroceries godoc
// @Summary Featured groceries
// @Tags Meals
// @Produce json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /groceries/featured [get]
func (h *MealHandler) FeaturedGroceries(w http.ResponseWriter, r *http.Request) {
	groceries, err := h.mealUsecase.FeaturedGroceries(r.Context())
	if err != nil {
		response.BadGateway(w, "Failed to load groceries")
		return
	}

	response.Success(w, http.StatusOK, "Groceries retrieved successfully", groceries)
}
