package recipeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calorie-planner/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.RecipeAPIConfig{BaseURL: srv.URL, Timeout: time.Second})
}

func TestClient_Recipes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes", r.URL.Path)
		w.Write([]byte(`{"recipes":[{"id":1,"name":"Classic Margherita Pizza","caloriesPerServing":300,"tags":["Pizza","Italian"],"mealType":["Dinner"]}],"total":1}`))
	})

	recipes, err := client.Recipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Classic Margherita Pizza", recipes[0].Name)
	assert.Equal(t, 300, recipes[0].CaloriesPerServing)
	assert.Equal(t, []string{"Dinner"}, recipes[0].MealType)
}

func TestClient_RecipeNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/999", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Recipe with id '999' not found"}`))
	})

	recipe, err := client.Recipe(context.Background(), 999)
	assert.Nil(t, recipe)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ProductsByCategory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/groceries", r.URL.Path)
		w.Write([]byte(`{"products":[{"id":16,"title":"Apple","category":"groceries","price":1.99}],"total":1}`))
	})

	products, err := client.ProductsByCategory(context.Background(), "groceries")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1.99", products[0].Price.String())
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := client.Recipes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
