package recipeshelf

import "github.com/familykitchen/recipeshelf/internal/types"

// Type aliases so callers need only the root package on their import
// line.

type (
	Source                = types.Source
	Recipe                = types.Recipe
	Ingredient            = types.Ingredient
	DraftIngredient       = types.DraftIngredient
	PreviewMetadata       = types.PreviewMetadata
	RecipeInput           = types.RecipeInput
	IngredientInput       = types.IngredientInput
	SaveRecipeRequest     = types.SaveRecipeRequest
	SaveIngredientRequest = types.SaveIngredientRequest
	RecipePatch           = types.RecipePatch
)

const (
	SourceYouTube   = types.SourceYouTube
	SourceBlog      = types.SourceBlog
	SourceInstagram = types.SourceInstagram
	SourceOther     = types.SourceOther
)

// ParseTags splits a comma-separated tag field, trimming entries and
// dropping empties.
func ParseTags(raw string) []string { return types.ParseTags(raw) }
