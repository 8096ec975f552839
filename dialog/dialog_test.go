package dialog

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	interrors "github.com/familykitchen/recipeshelf/internal/errors"
	"github.com/familykitchen/recipeshelf/internal/types"
	"github.com/familykitchen/recipeshelf/store"
)

// blockingRemote answers from memory and can hold a call open until
// released, which is how the busy-flag tests overlap two submissions.
type blockingRemote struct {
	mu      sync.Mutex
	recipes []types.Recipe
	hold    chan struct{} // when non-nil, mutations wait on it
	started chan struct{} // closed when the first held call is reached
	once    sync.Once
}

func (f *blockingRemote) wait() {
	f.mu.Lock()
	hold := f.hold
	f.mu.Unlock()
	if hold != nil {
		if f.started != nil {
			f.once.Do(func() { close(f.started) })
		}
		<-hold
	}
}

func (f *blockingRemote) ListRecipes(ctx context.Context) ([]types.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Recipe(nil), f.recipes...), nil
}

func (f *blockingRemote) CreateRecipe(ctx context.Context, req types.SaveRecipeRequest) (*types.Recipe, error) {
	f.wait()
	r := types.Recipe{ID: uuid.NewString(), Title: req.Title, URL: req.URL, Notes: req.Notes, Tags: req.Tags, Source: req.Source, CreatedAt: time.Now()}
	for _, d := range req.Ingredients {
		r.Ingredients = append(r.Ingredients, types.Ingredient{ID: uuid.NewString(), Name: d.Name, Amount: d.Amount})
	}
	f.mu.Lock()
	f.recipes = append([]types.Recipe{r}, f.recipes...)
	f.mu.Unlock()
	return &r, nil
}

func (f *blockingRemote) UpdateRecipe(ctx context.Context, recipeID string, req types.SaveRecipeRequest) (*types.RecipePatch, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == recipeID {
			f.recipes[i].Title = req.Title
			f.recipes[i].URL = req.URL
			f.recipes[i].Notes = req.Notes
			f.recipes[i].Tags = req.Tags
			f.recipes[i].Source = req.Source
			r := f.recipes[i]
			return &types.RecipePatch{ID: r.ID, Title: &r.Title, URL: &r.URL, Notes: &r.Notes, Tags: r.Tags, Source: &r.Source}, nil
		}
	}
	return nil, &interrors.SyncError{Status: 404, Message: "Recipe not found", Op: "update recipe"}
}

func (f *blockingRemote) DeleteRecipe(ctx context.Context, recipeID string) error { return nil }

func (f *blockingRemote) CreateIngredient(ctx context.Context, recipeID string, req types.SaveIngredientRequest) (*types.Ingredient, error) {
	f.wait()
	ing := types.Ingredient{ID: uuid.NewString(), Name: req.Name, Amount: req.Amount}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		if f.recipes[i].ID == recipeID {
			f.recipes[i].Ingredients = append(f.recipes[i].Ingredients, ing)
			return &ing, nil
		}
	}
	return nil, &interrors.SyncError{Status: 404, Message: "Recipe not found", Op: "create ingredient"}
}

func (f *blockingRemote) UpdateIngredient(ctx context.Context, ingredientID string, req types.SaveIngredientRequest) (*types.Ingredient, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		for j := range f.recipes[i].Ingredients {
			if f.recipes[i].Ingredients[j].ID == ingredientID {
				f.recipes[i].Ingredients[j].Name = req.Name
				f.recipes[i].Ingredients[j].Amount = req.Amount
				ing := f.recipes[i].Ingredients[j]
				return &ing, nil
			}
		}
	}
	return nil, &interrors.SyncError{Status: 404, Message: "Ingredient not found", Op: "update ingredient"}
}

func (f *blockingRemote) DeleteIngredient(ctx context.Context, ingredientID string) error {
	return nil
}

func TestRecipeDialog_CreateFlow(t *testing.T) {
	t.Parallel()
	s := store.New(&blockingRemote{})
	d := NewRecipeDialog(s)

	d.OpenCreate()
	if d.Mode() != ModeCreate {
		t.Fatalf("mode = %v, want create", d.Mode())
	}
	s.AddDraft("gochugaru", "2 tbsp")
	d.SetForm(RecipeForm{Title: "Kimchi Stew", URL: "https://example.com/kimchi", TagsRaw: "spicy, quick", Source: types.SourceBlog})

	r, err := d.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(r.Tags) != 2 || r.Tags[0] != "spicy" {
		t.Fatalf("tags = %v", r.Tags)
	}
	if len(r.Ingredients) != 1 {
		t.Fatalf("draft not submitted: %+v", r.Ingredients)
	}
	if d.Mode() != ModeClosed {
		t.Fatal("successful submit must close the panel")
	}
	if got := d.Form(); got != (RecipeForm{}) {
		t.Fatalf("form not reset: %+v", got)
	}
}

func TestRecipeDialog_EditFlow(t *testing.T) {
	t.Parallel()
	remote := &blockingRemote{}
	s := store.New(remote)
	seed, _ := remote.CreateRecipe(context.Background(), types.SaveRecipeRequest{Title: "Kimchi Stew", URL: "https://x", Tags: []string{"spicy", "quick"}, Ingredients: []types.DraftIngredient{{Name: "tofu"}}})
	_ = s.Load(context.Background())
	d := NewRecipeDialog(s)

	if !d.OpenEdit(seed.ID) {
		t.Fatal("OpenEdit failed for known id")
	}
	f := d.Form()
	if f.Title != "Kimchi Stew" || f.TagsRaw != "spicy, quick" {
		t.Fatalf("form not populated: %+v", f)
	}
	if len(s.Drafts()) != 1 {
		t.Fatal("ingredients not copied into draft buffer for display")
	}

	f.Title = "Kimchi Jjigae"
	d.SetForm(f)
	r, err := d.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if r.Title != "Kimchi Jjigae" {
		t.Fatalf("title = %q", r.Title)
	}
	if len(r.Ingredients) != 1 {
		t.Fatalf("edit touched ingredients: %+v", r.Ingredients)
	}
	if d.Mode() != ModeClosed || s.EditingRecipeID() != "" {
		t.Fatal("successful edit must close and clear the edit target")
	}
}

func TestRecipeDialog_OpenEditUnknownID(t *testing.T) {
	t.Parallel()
	d := NewRecipeDialog(store.New(&blockingRemote{}))
	if d.OpenEdit("missing") {
		t.Fatal("OpenEdit must fail for unknown id")
	}
	if d.Mode() != ModeClosed {
		t.Fatal("failed OpenEdit must leave the panel closed")
	}
}

func TestRecipeDialog_SubmitClosed(t *testing.T) {
	t.Parallel()
	d := NewRecipeDialog(store.New(&blockingRemote{}))
	if _, err := d.Submit(context.Background()); !stderrors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}

func TestRecipeDialog_ValidationKeepsPanelOpen(t *testing.T) {
	t.Parallel()
	d := NewRecipeDialog(store.New(&blockingRemote{}))
	d.OpenCreate()
	d.SetForm(RecipeForm{Title: "  ", URL: "https://x"})
	if _, err := d.Submit(context.Background()); !interrors.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if d.Mode() != ModeCreate {
		t.Fatal("failed submit must leave the panel open")
	}
	if d.Form().URL != "https://x" {
		t.Fatal("failed submit must keep the fields")
	}
}

func TestRecipeDialog_BusySerializesSubmissions(t *testing.T) {
	t.Parallel()
	remote := &blockingRemote{hold: make(chan struct{}), started: make(chan struct{})}
	s := store.New(remote)
	d := NewRecipeDialog(s)
	d.OpenCreate()
	d.SetForm(RecipeForm{Title: "t", URL: "https://x"})

	firstDone := make(chan error, 1)
	go func() {
		_, err := d.Submit(context.Background())
		firstDone <- err
	}()

	select {
	case <-remote.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first submit never reached the remote")
	}

	// Second submit must be rejected while the first is in flight.
	if _, err := d.Submit(context.Background()); !stderrors.Is(err, ErrBusy) {
		t.Fatalf("second submit err = %v, want ErrBusy", err)
	}

	close(remote.hold)
	if err := <-firstDone; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("collection = %d entries, want exactly 1", s.Len())
	}
}

func TestIngredientDialog_RapidMultiEntry(t *testing.T) {
	t.Parallel()
	remote := &blockingRemote{}
	s := store.New(remote)
	seed, _ := remote.CreateRecipe(context.Background(), types.SaveRecipeRequest{Title: "t", URL: "u"})
	_ = s.Load(context.Background())
	d := NewIngredientDialog(s)

	d.OpenFor(seed.ID)
	if d.SubmitLabel() != "추가" {
		t.Fatalf("label = %q", d.SubmitLabel())
	}

	for _, f := range []IngredientForm{{Name: "tofu", Amount: "1 block"}, {Name: "gochugaru", Amount: "2 tbsp"}} {
		d.SetForm(f)
		if _, err := d.Submit(context.Background()); err != nil {
			t.Fatalf("Submit(%q): %v", f.Name, err)
		}
		if d.Mode() != ModeCreate {
			t.Fatal("panel must stay open between entries")
		}
		if d.Form() != (IngredientForm{}) {
			t.Fatal("fields must clear for the next entry")
		}
	}

	r, _ := s.Recipe(seed.ID)
	if len(r.Ingredients) != 2 {
		t.Fatalf("ingredients = %+v", r.Ingredients)
	}
}

func TestIngredientDialog_EditDispatch(t *testing.T) {
	t.Parallel()
	remote := &blockingRemote{}
	s := store.New(remote)
	seed, _ := remote.CreateRecipe(context.Background(), types.SaveRecipeRequest{Title: "t", URL: "u", Ingredients: []types.DraftIngredient{{Name: "tofu", Amount: "1 block"}}})
	_ = s.Load(context.Background())
	d := NewIngredientDialog(s)

	d.OpenFor(seed.ID)
	d.StartEdit(seed.Ingredients[0])
	if d.Mode() != ModeEdit || d.SubmitLabel() != "수정" {
		t.Fatalf("mode = %v label = %q", d.Mode(), d.SubmitLabel())
	}
	if d.Form().Amount != "1 block" {
		t.Fatalf("form = %+v", d.Form())
	}

	d.SetForm(IngredientForm{Name: "tofu", Amount: "2 blocks"})
	ing, err := d.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ing.ID != seed.Ingredients[0].ID || ing.Amount != "2 blocks" {
		t.Fatalf("ing = %+v", ing)
	}
	if d.Mode() != ModeCreate || s.EditingIngredientID() != "" {
		t.Fatal("edit submit must drop back to create mode")
	}

	r, _ := s.Recipe(seed.ID)
	if len(r.Ingredients) != 1 || r.Ingredients[0].Amount != "2 blocks" {
		t.Fatalf("recipe ingredients = %+v", r.Ingredients)
	}
}

func TestIngredientDialog_CloseClearsScope(t *testing.T) {
	t.Parallel()
	s := store.New(&blockingRemote{})
	d := NewIngredientDialog(s)
	d.OpenFor("r1")
	if s.ActiveRecipeID() != "r1" {
		t.Fatal("OpenFor must set the active recipe")
	}
	d.Close()
	if s.ActiveRecipeID() != "" || d.Mode() != ModeClosed {
		t.Fatal("Close must clear the active recipe and close the panel")
	}
	if _, err := d.Submit(context.Background()); !stderrors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}
