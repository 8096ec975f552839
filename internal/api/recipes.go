package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/familykitchen/recipeshelf/internal/errors"
	"github.com/familykitchen/recipeshelf/internal/types"
)

// ListRecipes fetches the full collection, including each recipe's
// ingredients.
func ListRecipes(ctx context.Context, hc HTTPClient, baseURL string) ([]types.Recipe, error) {
	const op, fallback = "load recipes", "목록을 불러오지 못했습니다"
	url := fmt.Sprintf("%s/api/recipes", baseURL)
	resp, err := doJSON(ctx, hc, http.MethodGet, url, nil, op, fallback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, errors.FromResponse(op, fallback, resp)
	}

	var recipes []types.Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe submits a new recipe, draft ingredients included. The server
// responds with the full recipe shape: assigned id, creation timestamp and
// persisted ingredients with their ids.
func CreateRecipe(ctx context.Context, hc HTTPClient, baseURL string, req types.SaveRecipeRequest) (*types.Recipe, error) {
	const op, fallback = "create recipe", "저장 실패"
	url := fmt.Sprintf("%s/api/recipes", baseURL)
	resp, err := doJSON(ctx, hc, http.MethodPost, url, req, op, fallback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, errors.FromResponse(op, fallback, resp)
	}

	var recipe types.Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe submits recipe-level edits. The response decodes into a
// patch so the caller can shallow-merge exactly the fields the server
// returned.
func UpdateRecipe(ctx context.Context, hc HTTPClient, baseURL, recipeID string, req types.SaveRecipeRequest) (*types.RecipePatch, error) {
	const op, fallback = "update recipe", "저장 실패"
	url := fmt.Sprintf("%s/api/recipes/%s", baseURL, recipeID)
	resp, err := doJSON(ctx, hc, http.MethodPut, url, req, op, fallback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, errors.FromResponse(op, fallback, resp)
	}

	var patch types.RecipePatch
	if err := json.NewDecoder(resp.Body).Decode(&patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// DeleteRecipe removes a recipe. Success is signaled by status only.
func DeleteRecipe(ctx context.Context, hc HTTPClient, baseURL, recipeID string) error {
	const op, fallback = "delete recipe", "삭제 실패"
	url := fmt.Sprintf("%s/api/recipes/%s", baseURL, recipeID)
	resp, err := doJSON(ctx, hc, http.MethodDelete, url, nil, op, fallback)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return errors.FromResponse(op, fallback, resp)
	}
	return nil
}
