package types

import "strings"

// Trim normalizes the free-text fields the way the dialog does before
// submission. Tags are assumed to be parsed already (see ParseTags).
func (in RecipeInput) Trim() RecipeInput {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

// Trim normalizes both ingredient fields.
func (in IngredientInput) Trim() IngredientInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Amount = strings.TrimSpace(in.Amount)
	return in
}

// ParseTags splits a comma-separated tag field, trimming each entry and
// dropping empties. Duplicates are kept; order is preserved.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the inverse of ParseTags, used when populating the edit
// form from a stored recipe.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
