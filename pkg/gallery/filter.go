// Package gallery filters, searches and paginates catalog items, and keeps the
// selected category and current page of a gallery view.
package gallery

import (
	"strings"

	"studio-portfolio/pkg/models"
)

// Filter returns the items of the given category in their original order.
// models.AllCategories returns the input unchanged.
func Filter(items []models.Item, category string) []models.Item {
	if category == models.AllCategories {
		return items
	}
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Search keeps items whose title, description or any tag contains term,
// ignoring case. A blank term returns the input unchanged.
func Search(items []models.Item, term string) []models.Item {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if matches(item, term) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item models.Item, term string) bool {
	if strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Description), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Featured returns the featured items in catalog order
func Featured(items []models.Item) []models.Item {
	out := make([]models.Item, 0)
	for _, item := range items {
		if item.Featured {
			out = append(out, item)
		}
	}
	return out
}
