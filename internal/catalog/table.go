package catalog

import (
	"errors"
	"fmt"

	"github.com/kovka-shop/productseed/pkg/productseed"
)

// Entry is one row of a category table definition.
type Entry struct {
	Slug          string
	Name          string
	ArticlePrefix string
}

// Table is an ordered, immutable set of categories keyed by slug.
type Table struct {
	categories []productseed.Category
	bySlug     map[string]int
}

// NewTable builds a table from entries, assigning sort orders 1..n.
// Duplicate or empty slugs are rejected.
func NewTable(entries []Entry) (Table, error) {
	t := Table{
		categories: make([]productseed.Category, 0, len(entries)),
		bySlug:     make(map[string]int, len(entries)),
	}

	var errs []error
	for i, e := range entries {
		if e.Slug == "" {
			errs = append(errs, fmt.Errorf("entry %d: empty slug", i+1))
			continue
		}
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("entry %d (%s): empty name", i+1, e.Slug))
			continue
		}
		if _, dup := t.bySlug[e.Slug]; dup {
			errs = append(errs, fmt.Errorf("entry %d: duplicate slug %q", i+1, e.Slug))
			continue
		}
		t.bySlug[e.Slug] = len(t.categories)
		t.categories = append(t.categories, productseed.Category{
			Slug:          e.Slug,
			Name:          e.Name,
			SortOrder:     len(t.categories) + 1,
			ArticlePrefix: e.ArticlePrefix,
		})
	}

	if err := errors.Join(errs...); err != nil {
		return Table{}, fmt.Errorf("invalid category table: %w", err)
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(entries []Entry) Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of categories.
func (t Table) Len() int { return len(t.categories) }

// Categories returns a copy of the categories in table order.
func (t Table) Categories() []productseed.Category {
	out := make([]productseed.Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// Lookup returns the category for slug.
func (t Table) Lookup(slug string) (productseed.Category, bool) {
	i, ok := t.bySlug[slug]
	if !ok {
		return productseed.Category{}, false
	}
	return t.categories[i], true
}

// Slugs returns the slugs in table order.
func (t Table) Slugs() []string {
	out := make([]string, len(t.categories))
	for i, c := range t.categories {
		out[i] = c.Slug
	}
	return out
}

// Subset returns a table restricted to the given slugs, keeping table order
// and the original sort orders. Unknown slugs are returned as an error.
func (t Table) Subset(slugs []string) (Table, error) {
	want := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		if _, ok := t.bySlug[s]; !ok {
			return Table{}, fmt.Errorf("unknown category %q", s)
		}
		want[s] = true
	}

	sub := Table{bySlug: make(map[string]int, len(want))}
	for _, c := range t.categories {
		if want[c.Slug] {
			sub.bySlug[c.Slug] = len(sub.categories)
			sub.categories = append(sub.categories, c)
		}
	}
	return sub, nil
}
