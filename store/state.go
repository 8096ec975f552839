package store

import "github.com/familykitchen/recipeshelf/internal/types"

// Accessors and the dialog-facing bookkeeping: the draft ingredient buffer
// and the two independent edit-target ids (null/"" means create mode).

// Recipes returns a copy of the collection in its current order.
func (s *Store) Recipes() []types.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Recipe(nil), s.recipes...)
}

// Recipe returns a copy of one entry by id.
func (s *Store) Recipe(recipeID string) (*types.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(recipeID); idx >= 0 {
		r := s.recipes[idx]
		return &r, true
	}
	return nil, false
}

// Len reports the collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipes)
}

// Drafts returns a copy of the draft ingredient list.
func (s *Store) Drafts() []types.DraftIngredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.DraftIngredient(nil), s.drafts...)
}

// AddDraft appends a pending ingredient. An empty name after trimming is
// ignored.
func (s *Store) AddDraft(name, amount string) {
	in := types.IngredientInput{Name: name, Amount: amount}.Trim()
	if in.Name == "" {
		return
	}
	s.mu.Lock()
	s.drafts = append(s.drafts, types.DraftIngredient{Name: in.Name, Amount: in.Amount})
	s.mu.Unlock()
}

// RemoveDraft drops the draft at idx; out-of-range indexes are ignored.
func (s *Store) RemoveDraft(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= len(s.drafts) {
		return
	}
	s.drafts = append(s.drafts[:idx], s.drafts[idx+1:]...)
}

// ClearDrafts discards the draft buffer.
func (s *Store) ClearDrafts() {
	s.mu.Lock()
	s.drafts = nil
	s.mu.Unlock()
}

// BeginEdit switches the recipe dialog into edit mode for recipeID: the
// target's ingredients are copied into the draft buffer for display (ids
// stripped; they are never submitted on edit). Returns the target so the
// dialog can populate its fields, or false when the id is unknown.
func (s *Store) BeginEdit(recipeID string) (*types.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(recipeID)
	if idx < 0 {
		return nil, false
	}
	r := s.recipes[idx]
	s.editingRecipeID = recipeID
	s.drafts = make([]types.DraftIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		s.drafts = append(s.drafts, types.DraftIngredient{Name: ing.Name, Amount: ing.Amount})
	}
	return &r, true
}

// EndEdit returns the recipe dialog to create mode and discards the
// display drafts. Safe to call when not editing.
func (s *Store) EndEdit() {
	s.mu.Lock()
	s.editingRecipeID = ""
	s.drafts = nil
	s.mu.Unlock()
}

// EditingRecipeID is "" in create mode.
func (s *Store) EditingRecipeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingRecipeID
}

// SetActiveRecipe scopes the ingredient dialog to one recipe.
func (s *Store) SetActiveRecipe(recipeID string) {
	s.mu.Lock()
	s.activeRecipeID = recipeID
	s.mu.Unlock()
}

// ActiveRecipeID is the ingredient dialog's target, "" when closed.
func (s *Store) ActiveRecipeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeRecipeID
}

// BeginIngredientEdit marks one ingredient as the edit target.
func (s *Store) BeginIngredientEdit(ingredientID string) {
	s.mu.Lock()
	s.editingIngredientID = ingredientID
	s.mu.Unlock()
}

// EndIngredientEdit returns the ingredient dialog to create mode.
func (s *Store) EndIngredientEdit() {
	s.mu.Lock()
	s.editingIngredientID = ""
	s.mu.Unlock()
}

// EditingIngredientID is "" in create mode.
func (s *Store) EditingIngredientID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingIngredientID
}
