package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Source identifies where a recipe link was discovered.
type Source string

const (
	SourceYouTube   Source = "youtube"
	SourceBlog      Source = "blog"
	SourceInstagram Source = "instagram"
	SourceOther     Source = "other"
)

// Recipe is one catalogued link. The server assigns ID and CreatedAt; the
// Ingredients field mirrors server state after any ingredient round-trip.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	Notes       string       `json:"notes"`
	Tags        []string     `json:"tags"`
	Source      Source       `json:"source"`
	CreatedAt   time.Time    `json:"created_at"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient belongs to exactly one recipe. The server assigns the ID once
// the ingredient is persisted.
type Ingredient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// DraftIngredient is a pending {name, amount} pair composed while creating
// a new recipe. Drafts never carry an id and are discarded on submit or
// cancel.
type DraftIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// PreviewMetadata is the decoded body of the preview endpoint. Every field
// is optional.
type PreviewMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
	Image       string `json:"image,omitempty"`
	Site        string `json:"site,omitempty"`
}
