// Package catalog holds the immutable, ordered collection of portfolio items
// together with the single category list every other package relies on.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"studio-portfolio/pkg/models"
)

var (
	// ErrEmptyTitle is returned for an item without a title
	ErrEmptyTitle = errors.New("item title is empty")
	// ErrEmptySlug is returned for an item without a slug
	ErrEmptySlug = errors.New("item slug is empty")
	// ErrDuplicateSlug is returned when two items share a slug
	ErrDuplicateSlug = errors.New("duplicate item slug")
	// ErrInvalidStats is returned when an item carries neither or both stats shapes
	ErrInvalidStats = errors.New("item stats must be either completed or in-progress")
	// ErrDuplicateCategory is returned when the category list repeats an id
	ErrDuplicateCategory = errors.New("duplicate category id")
)

// DefaultCategories is used when a catalog document does not declare its own list.
var DefaultCategories = []models.Category{
	{ID: "branding", Label: "Branding", Icon: "palette"},
	{ID: "social", Label: "Social Media", Icon: "megaphone"},
	{ID: "web", Label: "Web Development", Icon: "globe"},
	{ID: "video", Label: "Video Production", Icon: "video"},
	{ID: "graphics", Label: "Graphics & Print", Icon: "brush"},
	{ID: "misc", Label: "Miscellaneous", Icon: "zap"},
}

// Catalog is safe to share between goroutines; nothing mutates it after New.
type Catalog struct {
	categories []models.Category
	items      []models.Item
	bySlug     map[string]int
	warnings   []string
}

// New validates items against the category list and builds a catalog.
// A nil category list falls back to DefaultCategories.
func New(categories []models.Category, items []models.Item) (*Catalog, error) {
	if categories == nil {
		categories = DefaultCategories
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		if known[c.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.ID)
		}
		known[c.ID] = true
	}

	c := &Catalog{
		categories: append([]models.Category(nil), categories...),
		items:      make([]models.Item, 0, len(items)),
		bySlug:     make(map[string]int, len(items)),
	}

	for i, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrEmptyTitle)
		}
		if strings.TrimSpace(item.Slug) == "" {
			return nil, fmt.Errorf("item %q: %w", item.Title, ErrEmptySlug)
		}
		if _, dup := c.bySlug[item.Slug]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, item.Slug)
		}
		switch item.Stats.(type) {
		case models.CompletedStats, models.InProgressStats:
		default:
			return nil, fmt.Errorf("item %q: %w", item.Slug, ErrInvalidStats)
		}
		if !known[item.Category] {
			c.warnings = append(c.warnings, fmt.Sprintf("item %q has unknown category %q and cannot be reached through filtering", item.Slug, item.Category))
		}
		if item.Category == "video" && item.VideoID == "" {
			c.warnings = append(c.warnings, fmt.Sprintf("video item %q has no videoId", item.Slug))
		}

		c.bySlug[item.Slug] = len(c.items)
		c.items = append(c.items, cloneItem(item))
	}

	return c, nil
}

// Items returns the catalog in its original order. Every item is a deep copy.
func (c *Catalog) Items() []models.Item {
	out := make([]models.Item, len(c.items))
	for i, item := range c.items {
		out[i] = cloneItem(item)
	}
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Categories returns the category list in declaration order
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by id
func (c *Catalog) Category(id string) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// Item looks up an item by slug
func (c *Catalog) Item(slug string) (models.Item, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Item{}, false
	}
	return cloneItem(c.items[i]), true
}

// Warnings lists data-entry defects that do not prevent serving the catalog
func (c *Catalog) Warnings() []string {
	return append([]string(nil), c.warnings...)
}

// Counts returns every category with its number of items, in category order.
func (c *Catalog) Counts() []models.CategoryCount {
	counts := make(map[string]int, len(c.categories))
	for _, item := range c.items {
		counts[item.Category]++
	}
	out := make([]models.CategoryCount, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, models.CategoryCount{Category: cat, Count: counts[cat.ID]})
	}
	return out
}

func cloneItem(item models.Item) models.Item {
	item.Tags = append([]string(nil), item.Tags...)
	item.Awards = append([]string(nil), item.Awards...)
	item.Images = append([]string(nil), item.Images...)
	item.ColorPalette = append([]models.Swatch(nil), item.ColorPalette...)
	if item.CaseStudy != nil {
		cs := *item.CaseStudy
		cs.Process = append([]string(nil), cs.Process...)
		cs.Results = append([]string(nil), cs.Results...)
		cs.Technologies = append([]string(nil), cs.Technologies...)
		cs.Testimonials = append([]models.Testimonial(nil), cs.Testimonials...)
		item.CaseStudy = &cs
	}
	return item
}
