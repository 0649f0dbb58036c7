package gallery

import "studio-portfolio/pkg/models"

// Page is one fixed-size slice of a filtered item list
type Page struct {
	Items      []models.Item `json:"items"`
	TotalPages int           `json:"totalPages"`
}

// TotalPages returns ceil(n / pageSize), or 0 when pageSize is not positive.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns the 1-based page of items. Pages outside [1, TotalPages]
// are empty; the caller clamps the page number.
func Paginate(items []models.Item, pageSize, page int) Page {
	total := TotalPages(len(items), pageSize)
	if page < 1 || page > total {
		return Page{Items: []models.Item{}, TotalPages: total}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return Page{Items: items[start:end:end], TotalPages: total}
}
