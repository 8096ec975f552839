// Package view turns the recipe collection into an ordered card list:
// keyword filter, stable sort, source badges, placeholder text and the
// preview region wiring.
package view

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/familykitchen/recipeshelf/embed"
	"github.com/familykitchen/recipeshelf/internal/types"
	"github.com/familykitchen/recipeshelf/preview"
)

// SortKey selects the list order.
type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortTitle  SortKey = "title"
)

// Filter is the list's search and sort state.
type Filter struct {
	Keyword string
	Sort    SortKey
}

// Card is one rendered list entry.
type Card struct {
	Recipe      types.Recipe
	SourceLabel string
	Tags        string // "#a #b" or the empty placeholder
	Notes       string
	Ingredients []string
	Domain      string
	Embed       *embed.Ref      // non-nil only for playable video links
	Preview     *preview.Lookup // nil when the card embeds directly
}

// List is the render output.
type List struct {
	Cards []Card
	Empty bool
}

// Renderer materializes cards. Title order uses Korean collation, the
// closest equivalent of the browser's locale-aware compare.
type Renderer struct {
	previews *preview.Cache
	coll     *collate.Collator
}

// NewRenderer builds a Renderer. previews may be nil, in which case
// cards carry no preview lookups.
func NewRenderer(previews *preview.Cache) *Renderer {
	return &Renderer{
		previews: previews,
		coll:     collate.New(language.Korean),
	}
}

// Render filters, sorts and materializes the collection. The keyword is
// matched against a lowercase concatenation of title, notes, tags and
// ingredient names; an empty keyword matches everything. Sorting is
// stable for ties.
func (v *Renderer) Render(recipes []types.Recipe, f Filter) List {
	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))

	kept := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if keyword == "" || strings.Contains(searchable(r), keyword) {
			kept = append(kept, r)
		}
	}

	switch f.Sort {
	case SortTitle:
		sort.SliceStable(kept, func(i, j int) bool {
			return v.coll.CompareString(kept[i].Title, kept[j].Title) < 0
		})
	case SortOldest:
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].CreatedAt.Before(kept[j].CreatedAt)
		})
	default: // newest
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[j].CreatedAt.Before(kept[i].CreatedAt)
		})
	}

	cards := make([]Card, 0, len(kept))
	for _, r := range kept {
		cards = append(cards, v.card(r))
	}
	return List{Cards: cards, Empty: len(cards) == 0}
}

func (v *Renderer) card(r types.Recipe) Card {
	c := Card{
		Recipe:      r,
		SourceLabel: SourceLabel(r.Source),
		Tags:        tagLine(r.Tags),
		Notes:       r.Notes,
		Domain:      Domain(r.URL),
	}
	if c.Notes == "" {
		c.Notes = "메모 없음"
	}
	for _, ing := range r.Ingredients {
		c.Ingredients = append(c.Ingredients, ingredientLine(ing))
	}
	if r.Source == types.SourceYouTube {
		c.Embed = embed.Resolve(r.URL)
	}
	if c.Embed == nil && v.previews != nil {
		c.Preview = v.previews.Get(r.URL)
	}
	return c
}

// searchable is the per-recipe haystack the keyword filter runs over.
func searchable(r types.Recipe) string {
	parts := []string{r.Title, r.Notes, strings.Join(r.Tags, " ")}
	for _, ing := range r.Ingredients {
		parts = append(parts, ing.Name)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// SourceLabel maps a source value to its badge text. Anything outside
// the known set renders as the generic badge.
func SourceLabel(s types.Source) string {
	switch s {
	case types.SourceYouTube:
		return "YouTube"
	case types.SourceBlog:
		return "블로그"
	case types.SourceInstagram:
		return "인스타"
	default:
		return "기타"
	}
}

// Domain extracts the host for the generic preview shell, or the plain
// link placeholder when the URL does not parse.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "링크"
	}
	return u.Host
}

// ShareText composes the share-sheet payload: title, URL, then notes
// when present.
func ShareText(r types.Recipe) string {
	lines := []string{r.Title, r.URL}
	if r.Notes != "" {
		lines = append(lines, r.Notes)
	}
	return strings.Join(lines, "\n")
}

func tagLine(tags []string) string {
	if len(tags) == 0 {
		return "태그 없음"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}

func ingredientLine(ing types.Ingredient) string {
	return strings.TrimSpace(ing.Name + " " + ing.Amount)
}

// PreviewView is the preview region after metadata has been applied.
type PreviewView struct {
	Title       string
	Description string
	Snippet     string
	Image       string
	Site        string
}

// BuildPreview patches resolved metadata into a card's generic shell.
// With nil metadata the shell stays as-is: generic title, the URL's
// domain, no image. A snippet identical to the description is dropped;
// when there is no description the snippet takes its place. No image in
// the metadata means no image element at all.
func BuildPreview(c Card, meta *types.PreviewMetadata) PreviewView {
	pv := PreviewView{Title: "블로그 링크", Site: c.Domain}
	if meta == nil {
		return pv
	}
	if meta.Title != "" {
		pv.Title = meta.Title
	}
	if meta.Site != "" {
		pv.Site = meta.Site
	}
	pv.Description = meta.Description
	pv.Image = meta.Image

	switch snippet := strings.TrimSpace(meta.Snippet); {
	case snippet == "" || snippet == strings.TrimSpace(pv.Description):
		// suppressed
	case pv.Description == "":
		pv.Description = snippet
	default:
		pv.Snippet = snippet
	}
	return pv
}
