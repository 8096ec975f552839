package types

// ------------------------------
// Request Types
// ------------------------------

// SaveRecipeRequest is the body for recipe create and update calls.
//
// Update submissions always carry an empty Ingredients slice: recipe-level
// edits never touch ingredients, which are mutated one at a time through
// the ingredient endpoints.
type SaveRecipeRequest struct {
	Title       string            `json:"title"`
	URL         string            `json:"url"`
	Notes       string            `json:"notes"`
	Tags        []string          `json:"tags"`
	Source      Source            `json:"source"`
	Ingredients []DraftIngredient `json:"ingredients"`
}

// SaveIngredientRequest is the body for ingredient create and update calls.
// Amount defaults to the empty string, never absent.
type SaveIngredientRequest struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RecipeInput is what the recipe dialog collects before submission.
type RecipeInput struct {
	Title  string
	URL    string
	Notes  string
	Tags   []string
	Source Source
}

// IngredientInput is what the ingredient dialog collects.
type IngredientInput struct {
	Name   string
	Amount string
}
