package types

import "time"

// ------------------------------
// Response Types
// ------------------------------

// RecipePatch is the decoded body of a recipe update. Pointer fields record
// presence, so the store's shallow merge only overwrites what the server
// actually returned; in particular a response without ingredients leaves
// the locally held ingredient list intact.
type RecipePatch struct {
	ID          string       `json:"id"`
	Title       *string      `json:"title"`
	URL         *string      `json:"url"`
	Notes       *string      `json:"notes"`
	Tags        []string     `json:"tags"`
	Source      *Source      `json:"source"`
	CreatedAt   *time.Time   `json:"created_at"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Apply merges the patch over r, preserving fields the response omitted.
func (p *RecipePatch) Apply(r *Recipe) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.URL != nil {
		r.URL = *p.URL
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.Tags != nil {
		r.Tags = p.Tags
	}
	if p.Source != nil {
		r.Source = *p.Source
	}
	if p.CreatedAt != nil {
		r.CreatedAt = *p.CreatedAt
	}
	if p.Ingredients != nil {
		r.Ingredients = p.Ingredients
	}
}
