package http

import (
	"net/http"

	"calorie-planner/internal/delivery/http/handler"
	"calorie-planner/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	calorieHandler  *handler.CalorieHandler
	profileHandler  *handler.ProfileHandler
	settingsHandler *handler.SettingsHandler
	mealHandler     *handler.MealHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	calorieHandler *handler.CalorieHandler,
	profileHandler *handler.ProfileHandler,
	settingsHandler *handler.SettingsHandler,
	mealHandler *handler.MealHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		calorieHandler:  calorieHandler,
		profileHandler:  profileHandler,
		settingsHandler: settingsHandler,
		mealHandler:     mealHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/{provider}/login", r.authHandler.SocialLogin).Methods(http.MethodGet)
	auth.HandleFunc("/{provider}/callback", r.authHandler.SocialCallback).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Calculator (identity optional)
	calories := api.PathPrefix("/calories").Subrouter()
	calories.Use(r.authMiddleware.Identify)
	calories.HandleFunc("/estimate", r.calorieHandler.Estimate).Methods(http.MethodPost)
	calories.HandleFunc("/defaults", r.calorieHandler.Defaults).Methods(http.MethodGet)

	// Profile (protected)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Settings (public read, admin write)
	api.HandleFunc("/settings", r.settingsHandler.GetSettings).Methods(http.MethodGet)
	adminSettings := api.PathPrefix("/settings").Subrouter()
	adminSettings.Use(r.authMiddleware.Authenticate)
	adminSettings.Use(middleware.RequireAdmin)
	adminSettings.HandleFunc("", r.settingsHandler.UpdateSettings).Methods(http.MethodPut)

	// Meal browser (public)
	api.HandleFunc("/meals", r.mealHandler.ListMeals).Methods(http.MethodGet)
	api.HandleFunc("/meals/categories", r.mealHandler.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/meals/{id:[0-9]+}", r.mealHandler.GetMeal).Methods(http.MethodGet)
	api.HandleFunc("/groceries/featured", r.mealHandler.FeaturedGroceries).Methods(http.MethodGet)

	// Preflight requests only need the CORS headers
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
