// Package recipeapi is a client for the public recipe and grocery JSON API.
package recipeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"calorie-planner/config"
	"calorie-planner/internal/domain/entity"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("recipe api: not found")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.RecipeAPIConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type recipesResponse struct {
	Recipes []entity.Recipe `json:"recipes"`
	Total   int             `json:"total"`
}

type productsResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
}

// Recipes returns the default recipe listing.
func (c *Client) Recipes(ctx context.Context) ([]entity.Recipe, error) {
	var res recipesResponse
	if err := c.get(ctx, "/recipes", &res); err != nil {
		return nil, err
	}
	return res.Recipes, nil
}

func (c *Client) Recipe(ctx context.Context, id int) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := c.get(ctx, "/recipes/"+strconv.Itoa(id), &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	var res productsResponse
	if err := c.get(ctx, "/products/category/"+url.PathEscape(category), &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create recipe api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call recipe api %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read recipe api response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recipe api error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse recipe api JSON: %w", err)
	}
	return nil
}
