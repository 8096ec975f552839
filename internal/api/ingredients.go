package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/familykitchen/recipeshelf/internal/errors"
	"github.com/familykitchen/recipeshelf/internal/types"
)

// CreateIngredient adds one ingredient to a recipe and returns it with the
// server-assigned id.
func CreateIngredient(ctx context.Context, hc HTTPClient, baseURL, recipeID string, req types.SaveIngredientRequest) (*types.Ingredient, error) {
	const op, fallback = "create ingredient", "재료 추가 실패"
	url := fmt.Sprintf("%s/api/recipes/%s/ingredients", baseURL, recipeID)
	resp, err := doJSON(ctx, hc, http.MethodPost, url, req, op, fallback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, errors.FromResponse(op, fallback, resp)
	}

	var ing types.Ingredient
	if err := json.NewDecoder(resp.Body).Decode(&ing); err != nil {
		return nil, err
	}
	return &ing, nil
}

// ListIngredients returns the persisted ingredients of one recipe.
func ListIngredients(ctx context.Context, hc HTTPClient, baseURL, recipeID string) ([]types.Ingredient, error) {
	const op, fallback = "load ingredients", "재료를 불러오지 못했습니다"
	url := fmt.Sprintf("%s/api/recipes/%s/ingredients", baseURL, recipeID)
	resp, err := doJSON(ctx, hc, http.MethodGet, url, nil, op, fallback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, errors.FromResponse(op, fallback, resp)
	}

	var ings []types.Ingredient
	if err := json.NewDecoder(resp.Body).Decode(&ings); err != nil {
		return nil, err
	}
	return ings, nil
}

// UpdateIngredient replaces one ingredient's name and amount.
func UpdateIngredient(ctx context.Context, hc HTTPClient, baseURL, ingredientID string, req types.SaveIngredientRequest) (*types.Ingredient, error) {
	const op, fallback = "update ingredient", "재료 추가 실패"
	url := fmt.Sprintf("%s/api/ingredients/%s", baseURL, ingredientID)
	resp, err := doJSON(ctx, hc, http.MethodPut, url, req, op, fallback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, errors.FromResponse(op, fallback, resp)
	}

	var ing types.Ingredient
	if err := json.NewDecoder(resp.Body).Decode(&ing); err != nil {
		return nil, err
	}
	return &ing, nil
}

// DeleteIngredient removes one ingredient. Success is signaled by status
// only.
func DeleteIngredient(ctx context.Context, hc HTTPClient, baseURL, ingredientID string) error {
	const op, fallback = "delete ingredient", "삭제 실패"
	url := fmt.Sprintf("%s/api/ingredients/%s", baseURL, ingredientID)
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
