// Package dialog holds the two modal state machines in front of the
// recipe store: the recipe create/edit panel and the nested ingredient
// panel. Each dialog serializes its own submissions with a busy flag,
// so a second submit against the same panel fails fast instead of
// racing the one in flight.
package dialog

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/familykitchen/recipeshelf/internal/types"
	"github.com/familykitchen/recipeshelf/store"
)

// Mode is a dialog's lifecycle state.
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
)

var (
	// ErrBusy means a submission is already in flight on this dialog.
	ErrBusy = stderrors.New("dialog: submission in flight")
	// ErrClosed means Submit was called on a closed dialog.
	ErrClosed = stderrors.New("dialog: not open")
)

// RecipeForm is the recipe panel's field set. Tags are entered as one
// comma-separated string and split on submit.
type RecipeForm struct {
	Title   string
	URL     string
	Notes   string
	TagsRaw string
	Source  types.Source
}

// RecipeDialog drives the recipe create/edit panel.
type RecipeDialog struct {
	store *store.Store

	mu   sync.Mutex
	mode Mode
	busy bool
	form RecipeForm
}

// NewRecipeDialog builds a closed recipe panel over s.
func NewRecipeDialog(s *store.Store) *RecipeDialog {
	return &RecipeDialog{store: s}
}

// OpenCreate resets the form and the draft ingredient buffer and opens
// the panel in create mode.
func (d *RecipeDialog) OpenCreate() {
	d.mu.Lock()
	d.mode = ModeCreate
	d.form = RecipeForm{Source: types.SourceYouTube}
	d.mu.Unlock()
	d.store.EndEdit()
}

// OpenEdit opens the panel in edit mode populated from the target
// recipe. The target's ingredients are copied into the draft buffer for
// display only. Returns false when the id is unknown to the store.
func (d *RecipeDialog) OpenEdit(recipeID string) bool {
	r, ok := d.store.BeginEdit(recipeID)
	if !ok {
		return false
	}
	d.mu.Lock()
	d.mode = ModeEdit
	d.form = RecipeForm{
		Title:   r.Title,
		URL:     r.URL,
		Notes:   r.Notes,
		TagsRaw: types.JoinTags(r.Tags),
		Source:  r.Source,
	}
	d.mu.Unlock()
	return true
}

// Close abandons the panel from either mode: edit target and draft
// buffer are cleared, fields reset. Safe to call when already closed.
func (d *RecipeDialog) Close() {
	d.mu.Lock()
	d.mode = ModeClosed
	d.form = RecipeForm{}
	d.mu.Unlock()
	d.store.EndEdit()
}

// Mode reports the panel's current state.
func (d *RecipeDialog) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SetForm replaces the panel's field values.
func (d *RecipeDialog) SetForm(f RecipeForm) {
	d.mu.Lock()
	d.form = f
	d.mu.Unlock()
}

// Form returns the panel's current field values.
func (d *RecipeDialog) Form() RecipeForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// Submit dispatches the form to Store.Create or Store.Update depending
// on mode and on success closes and resets the panel. Validation and
// sync failures leave the panel open with fields intact so the user can
// correct and resubmit. A second Submit while one is in flight returns
// ErrBusy without touching the store.
func (d *RecipeDialog) Submit(ctx context.Context) (*types.Recipe, error) {
	d.mu.Lock()
	if d.mode == ModeClosed {
		d.mu.Unlock()
		return nil, ErrClosed
	}
	if d.busy {
		d.mu.Unlock()
		return nil, ErrBusy
	}
	d.busy = true
	mode := d.mode
	f := d.form
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()
	}()

	in := types.RecipeInput{
		Title:  f.Title,
		URL:    f.URL,
		Notes:  f.Notes,
		Tags:   types.ParseTags(f.TagsRaw),
		Source: f.Source,
	}

	var (
		r   *types.Recipe
		err error
	)
	if mode == ModeEdit {
		r, err = d.store.Update(ctx, d.store.EditingRecipeID(), in)
	} else {
		r, err = d.store.Create(ctx, in)
	}
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.mode = ModeClosed
	d.form = RecipeForm{}
	d.mu.Unlock()
	return r, nil
}

// IngredientForm is the ingredient panel's field set.
type IngredientForm struct {
	Name   string
	Amount string
}

// IngredientDialog drives the nested ingredient panel. It is scoped to
// one active recipe and stays open across submissions so several
// ingredients can be entered in a row.
type IngredientDialog struct {
	store *store.Store

	mu   sync.Mutex
	mode Mode
	busy bool
	form IngredientForm
}

// NewIngredientDialog builds a closed ingredient panel over s.
func NewIngredientDialog(s *store.Store) *IngredientDialog {
	return &IngredientDialog{store: s}
}

// OpenFor scopes the panel to recipeID, resets the fields and opens in
// create mode.
func (d *IngredientDialog) OpenFor(recipeID string) {
	d.store.SetActiveRecipe(recipeID)
	d.store.EndIngredientEdit()
	d.mu.Lock()
	d.mode = ModeCreate
	d.form = IngredientForm{}
	d.mu.Unlock()
}

// StartEdit switches the open panel to edit mode for one ingredient,
// keeping the active recipe, and populates the fields from it.
func (d *IngredientDialog) StartEdit(ing types.Ingredient) {
	d.store.BeginIngredientEdit(ing.ID)
	d.mu.Lock()
	d.mode = ModeEdit
	d.form = IngredientForm{Name: ing.Name, Amount: ing.Amount}
	d.mu.Unlock()
}

// Close clears the active recipe and the edit target and closes the
// panel.
func (d *IngredientDialog) Close() {
	d.mu.Lock()
	d.mode = ModeClosed
	d.form = IngredientForm{}
	d.mu.Unlock()
	d.store.SetActiveRecipe("")
	d.store.EndIngredientEdit()
}

// Mode reports the panel's current state.
func (d *IngredientDialog) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SetForm replaces the panel's field values.
func (d *IngredientDialog) SetForm(f IngredientForm) {
	d.mu.Lock()
	d.form = f
	d.mu.Unlock()
}

// Form returns the panel's current field values.
func (d *IngredientDialog) Form() IngredientForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// SubmitLabel is the panel's action label for the current mode.
func (d *IngredientDialog) SubmitLabel() string {
	if d.Mode() == ModeEdit {
		return "수정"
	}
	return "추가"
}

// Submit dispatches to Store.AddIngredient or Store.UpdateIngredient
// based on mode. On success the panel stays open with cleared fields so
// the next ingredient can be entered immediately; an edit drops back to
// create mode. Failures leave the fields intact.
func (d *IngredientDialog) Submit(ctx context.Context) (*types.Ingredient, error) {
	d.mu.Lock()
	if d.mode == ModeClosed {
		d.mu.Unlock()
		return nil, ErrClosed
	}
	if d.busy {
		d.mu.Unlock()
		return nil, ErrBusy
	}
	d.busy = true
	mode := d.mode
	f := d.form
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()
	}()

	in := types.IngredientInput{Name: f.Name, Amount: f.Amount}
	recipeID := d.store.ActiveRecipeID()

	var (
		ing *types.Ingredient
		err error
	)
	if mode == ModeEdit {
		ing, err = d.store.UpdateIngredient(ctx, recipeID, d.store.EditingIngredientID(), in)
	} else {
		ing, err = d.store.AddIngredient(ctx, recipeID, in)
	}
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.mode = ModeCreate
	d.form = IngredientForm{}
	d.mu.Unlock()
	d.store.EndIngredientEdit()
	return ing, nil
}
