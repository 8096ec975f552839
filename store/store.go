// Package store holds the authoritative in-memory recipe collection, the
// draft ingredient buffer and the edit-mode bookkeeping, and round-trips
// every mutation through the remote collection store before applying it
// locally. A failed round-trip leaves local state untouched.
package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/familykitchen/recipeshelf/internal/errors"
	"github.com/familykitchen/recipeshelf/internal/types"
)

// Remote is the slice of the sync client the store needs.
type Remote interface {
	ListRecipes(ctx context.Context) ([]types.Recipe, error)
	CreateRecipe(ctx context.Context, req types.SaveRecipeRequest) (*types.Recipe, error)
	UpdateRecipe(ctx context.Context, recipeID string, req types.SaveRecipeRequest) (*types.RecipePatch, error)
	DeleteRecipe(ctx context.Context, recipeID string) error
	CreateIngredient(ctx context.Context, recipeID string, req types.SaveIngredientRequest) (*types.Ingredient, error)
	UpdateIngredient(ctx context.Context, ingredientID string, req types.SaveIngredientRequest) (*types.Ingredient, error)
	DeleteIngredient(ctx context.Context, ingredientID string) error
}

// ConfirmFunc asks the user to approve a destructive operation. Returning
// false aborts the operation before any request is issued.
type ConfirmFunc func(prompt string) bool

// Store is safe for concurrent use, though interactive frontends drive it
// from a single event loop in practice.
type Store struct {
	remote  Remote
	confirm ConfirmFunc
	log     zerolog.Logger

	mu                  sync.Mutex
	recipes             []types.Recipe
	drafts              []types.DraftIngredient
	editingRecipeID     string
	editingIngredientID string
	activeRecipeID      string
}

// Option configures a Store during construction.
type Option func(*Store)

// WithConfirm installs the confirmation prompt consulted before deletes.
// The default approves everything.
func WithConfirm(f ConfirmFunc) Option {
	return func(s *Store) {
		if f != nil {
			s.confirm = f
		}
	}
}

// WithLogger attaches a logger for operation traces.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithInitial seeds the collection, mainly for tests.
func WithInitial(recipes []types.Recipe) Option {
	return func(s *Store) { s.recipes = append([]types.Recipe(nil), recipes...) }
}

// New builds a Store over the given remote.
func New(remote Remote, opts ...Option) *Store {
	s := &Store{
		remote:  remote,
		confirm: func(string) bool { return true },
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the full collection and replaces the local one. On failure
// the prior collection stays in place; there is no partial merge.
func (s *Store) Load(ctx context.Context) error {
	recipes, err := s.remote.ListRecipes(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.recipes = recipes
	s.mu.Unlock()
	s.log.Debug().Int("count", len(recipes)).Msg("collection loaded")
	return nil
}

// Create validates the input, submits it together with the current draft
// ingredient list, and on success prepends the server-shaped recipe,
// clears the drafts and exits edit mode.
func (s *Store) Create(ctx context.Context, in types.RecipeInput) (*types.Recipe, error) {
	in = in.Trim()
	if in.Title == "" {
		return nil, &errors.ValidationError{Field: "title"}
	}
	if in.URL == "" {
		return nil, &errors.ValidationError{Field: "url"}
	}

	s.mu.Lock()
	drafts := append([]types.DraftIngredient{}, s.drafts...)
	s.mu.Unlock()

	req := types.SaveRecipeRequest{
		Title:       in.Title,
		URL:         in.URL,
		Notes:       in.Notes,
		Tags:        in.Tags,
		Source:      in.Source,
		Ingredients: drafts,
	}
	created, err := s.remote.CreateRecipe(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.recipes = append([]types.Recipe{*created}, s.recipes...)
	s.drafts = nil
	s.editingRecipeID = ""
	s.mu.Unlock()
	s.log.Debug().Str("id", created.ID).Msg("recipe created")
	return created, nil
}

// Update validates the input and submits a recipe-level edit. The payload
// always carries an empty ingredient list: ingredient mutation is the
// ingredient dialog's responsibility alone. On success the targeted entry
// is shallow-merged with the response; if the entry is missing locally the
// whole collection is reloaded.
func (s *Store) Update(ctx context.Context, recipeID string, in types.RecipeInput) (*types.Recipe, error) {
	in = in.Trim()
	if in.Title == "" {
		return nil, &errors.ValidationError{Field: "title"}
	}
	if in.URL == "" {
		return nil, &errors.ValidationError{Field: "url"}
	}

	req := types.SaveRecipeRequest{
		Title:       in.Title,
		URL:         in.URL,
		Notes:       in.Notes,
		Tags:        in.Tags,
		Source:      in.Source,
		Ingredients: []types.DraftIngredient{},
	}
	patch, err := s.remote.UpdateRecipe(ctx, recipeID, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(recipeID)
	if idx < 0 {
		// The submit succeeded, so drafts and edit mode are cleared even
		// though the local entry has to be recovered by reloading.
		s.drafts = nil
		s.editingRecipeID = ""
		s.mu.Unlock()
		s.log.Warn().Str("id", recipeID).Msg("updated recipe missing locally, reloading")
		if err := s.Load(ctx); err != nil {
			return nil, err
		}
		r, ok := s.Recipe(recipeID)
		if !ok {
			return nil, &errors.SyncError{Status: http.StatusNotFound, Message: "저장 실패", Op: "update recipe"}
		}
		return r, nil
	}
	patch.Apply(&s.recipes[idx])
	updated := s.recipes[idx]
	s.drafts = nil
	s.editingRecipeID = ""
	s.mu.Unlock()
	return &updated, nil
}

// Remove deletes a recipe after user confirmation. A declined prompt is a
// no-op. On success the entry is dropped from the collection; on failure
// the collection is unchanged.
func (s *Store) Remove(ctx context.Context, recipeID string) error {
	if !s.confirm("정말 삭제할까요?") {
		return nil
	}
	if err := s.remote.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}
	s.mu.Lock()
	if idx := s.indexOf(recipeID); idx >= 0 {
		s.recipes = append(s.recipes[:idx], s.recipes[idx+1:]...)
	}
	s.mu.Unlock()
	s.log.Debug().Str("id", recipeID).Msg("recipe removed")
	return nil
}

// AddIngredient persists one ingredient against a recipe, then appends it
// to the owning recipe's list. An empty name never reaches the network.
func (s *Store) AddIngredient(ctx context.Context, recipeID string, in types.IngredientInput) (*types.Ingredient, error) {
	in = in.Trim()
	if in.Name == "" {
		return nil, &errors.ValidationError{Field: "name"}
	}
	ing, err := s.remote.CreateIngredient(ctx, recipeID, types.SaveIngredientRequest{Name: in.Name, Amount: in.Amount})
	if err != nil {
		return nil, err
	}
	err = s.patchIngredients(ctx, recipeID, func(r *types.Recipe) {
		r.Ingredients = append(r.Ingredients, *ing)
	})
	return ing, err
}

// UpdateIngredient persists an edit to one ingredient and replaces it by
// id in the owning recipe's list.
func (s *Store) UpdateIngredient(ctx context.Context, recipeID, ingredientID string, in types.IngredientInput) (*types.Ingredient, error) {
	in = in.Trim()
	if in.Name == "" {
		return nil, &errors.ValidationError{Field: "name"}
	}
	ing, err := s.remote.UpdateIngredient(ctx, ingredientID, types.SaveIngredientRequest{Name: in.Name, Amount: in.Amount})
	if err != nil {
		return nil, err
	}
	err = s.patchIngredients(ctx, recipeID, func(r *types.Recipe) {
		for i := range r.Ingredients {
			if r.Ingredients[i].ID == ing.ID {
				r.Ingredients[i] = *ing
				return
			}
		}
	})
	return ing, err
}

// RemoveIngredient deletes one ingredient after user confirmation and
// filters it out of the owning recipe's list.
func (s *Store) RemoveIngredient(ctx context.Context, recipeID, ingredientID string) error {
	if !s.confirm("재료를 삭제할까요?") {
		return nil
	}
	if err := s.remote.DeleteIngredient(ctx, ingredientID); err != nil {
		return err
	}
	return s.patchIngredients(ctx, recipeID, func(r *types.Recipe) {
		kept := r.Ingredients[:0]
		for _, ing := range r.Ingredients {
			if ing.ID != ingredientID {
				kept = append(kept, ing)
			}
		}
		r.Ingredients = kept
	})
}

// patchIngredients applies fn to the owning recipe. When the recipe is not
// cached locally the whole collection is reloaded instead, so the local
// view converges with the server either way.
func (s *Store) patchIngredients(ctx context.Context, recipeID string, fn func(*types.Recipe)) error {
	s.mu.Lock()
	idx := s.indexOf(recipeID)
	if idx >= 0 {
		fn(&s.recipes[idx])
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	s.log.Warn().Str("id", recipeID).Msg("recipe missing locally after ingredient round-trip, reloading")
	return s.Load(ctx)
}

// indexOf requires s.mu held.
func (s *Store) indexOf(recipeID string) int {
	for i := range s.recipes {
		if s.recipes[i].ID == recipeID {
			return i
		}
	}
	return -1
}
