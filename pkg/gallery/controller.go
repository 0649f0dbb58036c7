package gallery

import (
	"strings"

	"studio-portfolio/pkg/models"
)

// State is everything a gallery view needs to be rebuilt: the selected
// category, the 1-based current page and the search term.
type State struct {
	Category string `json:"category"`
	Page     int    `json:"page"`
	Search   string `json:"search,omitempty"`
}

// View is the derived, render-ready result of a State
type View struct {
	State
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
	Items      []models.Item `json:"items"`
}

// HasPrev reports whether a previous page exists
func (v View) HasPrev() bool { return v.Page > 1 }

// HasNext reports whether a next page exists
func (v View) HasNext() bool { return v.Page < v.TotalPages }

// Controller owns the state of one gallery. It is not safe for concurrent use;
// servers build one per request from the shared catalog.
type Controller struct {
	items    []models.Item
	pageSize int
	state    State
}

// NewController starts on the first page of all items.
func NewController(items []models.Item, pageSize int) *Controller {
	return &Controller{
		items:    items,
		pageSize: pageSize,
		state:    State{Category: models.AllCategories, Page: 1},
	}
}

// PageSize returns the fixed page size of this gallery
func (c *Controller) PageSize() int {
	return c.pageSize
}

// State returns a copy of the current state
func (c *Controller) State() State {
	return c.state
}

// Restore applies a previously captured state. The page is clamped against
// the restored category and search.
func (c *Controller) Restore(s State) {
	category := strings.TrimSpace(s.Category)
	if category == "" {
		category = models.AllCategories
	}
	c.state = State{Category: category, Page: 1, Search: strings.TrimSpace(s.Search)}
	c.GoToPage(s.Page)
}

// SelectCategory switches the filter and always returns to the first page.
func (c *Controller) SelectCategory(category string) {
	c.state.Category = category
	c.state.Page = 1
}

// SetSearch changes the search term and returns to the first page.
func (c *Controller) SetSearch(term string) {
	c.state.Search = strings.TrimSpace(term)
	c.state.Page = 1
}

// GoToPage moves to page p clamped into [1, TotalPages]. With no pages at all
// the current page stays 1.
func (c *Controller) GoToPage(p int) {
	total := TotalPages(len(c.Filtered()), c.pageSize)
	switch {
	case total == 0 || p < 1:
		c.state.Page = 1
	case p > total:
		c.state.Page = total
	default:
		c.state.Page = p
	}
}

// NextPage is GoToPage(current+1)
func (c *Controller) NextPage() {
	c.GoToPage(c.state.Page + 1)
}

// PrevPage is GoToPage(current-1)
func (c *Controller) PrevPage() {
	c.GoToPage(c.state.Page - 1)
}

// Filtered returns the items matching the selected category and search term
func (c *Controller) Filtered() []models.Item {
	return Search(Filter(c.items, c.state.Category), c.state.Search)
}

// View recomputes the current page from the state.
func (c *Controller) View() View {
	filtered := c.Filtered()
	page := Paginate(filtered, c.pageSize, c.state.Page)
	return View{
		State:      c.state,
		TotalPages: page.TotalPages,
		TotalItems: len(filtered),
		Items:      page.Items,
	}
}
