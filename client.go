// Package recipeshelf is the sync client for a recipeshelf collection
// store. Client wraps the REST surface one method per operation; the
// store, preview and view packages build the interactive frontend on
// top of it.
package recipeshelf

import (
	"context"
	"net/http"
	"time"

	"github.com/familykitchen/recipeshelf/internal/api"
	"github.com/familykitchen/recipeshelf/internal/types"
)

// Client talks to one collection store. It is safe for concurrent use
// and implements both store.Remote and preview.Source.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client against baseURL. Additional options can be
// provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// NewFromEnv constructs a Client from RECIPESHELF_* environment
// variables. Options are applied after the env config.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	all := append([]Option{WithHTTPTimeout(cfg.HTTPTimeout)}, opts...)
	if cfg.Debug {
		all = append(all, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, all...), nil
}

// BaseURL returns the configured collection store address.
func (c *Client) BaseURL() string { return c.baseURL }

// ListRecipes fetches the full collection, ingredients included.
func (c *Client) ListRecipes(ctx context.Context) ([]types.Recipe, error) {
	recipes, err := api.ListRecipes(ctx, c.http, c.baseURL)
	return recipes, c.counted("load recipes", err)
}

// CreateRecipe submits a new recipe together with its draft ingredients.
func (c *Client) CreateRecipe(ctx context.Context, req types.SaveRecipeRequest) (*types.Recipe, error) {
	recipe, err := api.CreateRecipe(ctx, c.http, c.baseURL, req)
	return recipe, c.counted("create recipe", err)
}

// UpdateRecipe submits recipe-level edits and returns the server's patch
// for shallow-merging into local state.
func (c *Client) UpdateRecipe(ctx context.Context, recipeID string, req types.SaveRecipeRequest) (*types.RecipePatch, error) {
	patch, err := api.UpdateRecipe(ctx, c.http, c.baseURL, recipeID, req)
	return patch, c.counted("update recipe", err)
}

// DeleteRecipe removes a recipe and everything under it.
func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) error {
	return c.counted("delete recipe", api.DeleteRecipe(ctx, c.http, c.baseURL, recipeID))
}

// CreateIngredient adds one ingredient to a recipe.
func (c *Client) CreateIngredient(ctx context.Context, recipeID string, req types.SaveIngredientRequest) (*types.Ingredient, error) {
	ing, err := api.CreateIngredient(ctx, c.http, c.baseURL, recipeID, req)
	return ing, c.counted("create ingredient", err)
}

// ListIngredients returns one recipe's persisted ingredients.
func (c *Client) ListIngredients(ctx context.Context, recipeID string) ([]types.Ingredient, error) {
	ings, err := api.ListIngredients(ctx, c.http, c.baseURL, recipeID)
	return ings, c.counted("load ingredients", err)
}

// UpdateIngredient replaces one ingredient's name and amount.
func (c *Client) UpdateIngredient(ctx context.Context, ingredientID string, req types.SaveIngredientRequest) (*types.Ingredient, error) {
	ing, err := api.UpdateIngredient(ctx, c.http, c.baseURL, ingredientID, req)
	return ing, c.counted("update ingredient", err)
}

// DeleteIngredient removes one ingredient.
func (c *Client) DeleteIngredient(ctx context.Context, ingredientID string) error {
	return c.counted("delete ingredient", api.DeleteIngredient(ctx, c.http, c.baseURL, ingredientID))
}

// FetchPreview asks the collection store's preview endpoint for link
// metadata. Callers normally reach this through preview.Cache.
func (c *Client) FetchPreview(ctx context.Context, url string) (*types.PreviewMetadata, error) {
	meta, err := api.FetchPreview(ctx, c.http, c.baseURL, url)
	return meta, c.counted("fetch preview", err)
}

// counted bumps the failure counter for op when err is non-nil.
func (c *Client) counted(op string, err error) error {
	if err != nil {
		syncFailuresTotal.WithLabelValues(op).Inc()
	}
	return err
}
