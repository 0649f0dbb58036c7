package handlers

import (
	"net/url"
	"strconv"

	"studio-portfolio/pkg/cards"
	"studio-portfolio/pkg/gallery"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/services"
)

const workPath = "/work"

// gallery layouts selected by the view query parameter
const (
	gridLayout = "grid"
	listLayout = "list"
)

// CategoryTab is one entry of the category filter bar
type CategoryTab struct {
	ID     string
	Label  string
	Href   string
	Class  string
	Active bool
}

// PageLink is one entry of the pagination bar
type PageLink struct {
	Number int
	Href   string
	Class  string
}

// WorkPage is the gallery page data
type WorkPage struct {
	Title      string
	Search     string
	Layout     string
	GridClass  string
	GridHref   string
	ListHref   string
	GridToggle string
	ListToggle string
	Categories []CategoryTab
	Featured   []cards.Card
	Cards      []cards.Card
	Pages      []PageLink
	Page       int
	TotalPages int
	TotalItems int
	HasPrev    bool
	HasNext    bool
	PrevHref   string
	NextHref   string
	Empty      bool
}

// ProjectPage is the project detail page data
type ProjectPage struct {
	Title       string
	Class       string
	Card        cards.Card
	Item        models.Item
	Image       string
	ImageIndex  int
	ImageCount  int
	HasCarousel bool
	PrevHref    string
	NextHref    string
	BackHref    string
}

// CaseStudyPage is the case-study detail page data
type CaseStudyPage struct {
	Title        string
	Class        string
	Card         cards.Card
	Item         models.Item
	HasCaseStudy bool
	CaseStudy    services.CaseStudyHTML
	Process      []string
	Results      []string
	Technologies []string
	Testimonials []models.Testimonial
	Palette      []models.Swatch
	BackHref     string
}

// FeedResponse is the JSON gallery view
type FeedResponse struct {
	gallery.State
	TotalPages int          `json:"totalPages"`
	TotalItems int          `json:"totalItems"`
	Cards      []cards.Card `json:"cards"`
}

// workHref links to the gallery. The grid layout is the default and is left
// out of the query.
func workHref(category, search, layout string, page int) string {
	q := url.Values{}
	if category != "" && category != models.AllCategories {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("q", search)
	}
	if layout == listLayout {
		q.Set("view", listLayout)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return workPath
	}
	return workPath + "?" + q.Encode()
}

func buildWorkPage(view gallery.View, layout string, categories []models.Category, featured []models.Item) WorkPage {
	if layout != listLayout {
		layout = gridLayout
	}
	page := WorkPage{
		Title:      "Our Work",
		Search:     view.Search,
		Layout:     layout,
		GridClass:  "gallery gallery--" + layout,
		GridHref:   workHref(view.Category, view.Search, gridLayout, view.Page),
		ListHref:   workHref(view.Category, view.Search, listLayout, view.Page),
		GridToggle: activeClass("toggle", layout == gridLayout),
		ListToggle: activeClass("toggle", layout == listLayout),
		Cards:      cards.RenderAll(view.Items, categories),
		Page:       view.Page,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		HasPrev:    view.HasPrev(),
		HasNext:    view.HasNext(),
		Empty:      len(view.Items) == 0,
	}

	// no page parameter on the tabs: picking a category starts at page 1
	tabs := append([]models.Category{{ID: models.AllCategories, Label: "All"}}, categories...)
	for _, c := range tabs {
		active := c.ID == view.Category
		page.Categories = append(page.Categories, CategoryTab{
			ID:     c.ID,
			Label:  c.Label,
			Href:   workHref(c.ID, view.Search, layout, 1),
			Class:  activeClass("tab", active),
			Active: active,
		})
	}

	for n := 1; n <= view.TotalPages; n++ {
		page.Pages = append(page.Pages, PageLink{
			Number: n,
			Href:   workHref(view.Category, view.Search, layout, n),
			Class:  activeClass("page", n == view.Page),
		})
	}
	if page.HasPrev {
		page.PrevHref = workHref(view.Category, view.Search, layout, view.Page-1)
	}
	if page.HasNext {
		page.NextHref = workHref(view.Category, view.Search, layout, view.Page+1)
	}

	// the featured strip only shows on the unfiltered first page
	if view.Category == models.AllCategories && view.Search == "" && view.Page == 1 {
		page.Featured = cards.RenderAll(featured, categories)
	}
	return page
}

func buildProjectPage(item models.Item, categories []models.Category, imageIndex int) ProjectPage {
	card := cards.Render(item, categories)
	page := ProjectPage{
		Title:    item.Title,
		Class:    "project project--" + string(card.Variant),
		Card:     card,
		Item:     item,
		Image:    card.Image,
		BackHref: workHref(item.Category, "", gridLayout, 1),
	}

	if len(item.Images) > 0 {
		carousel := gallery.NewCarousel(len(item.Images), imageIndex)
		page.Image = item.Images[carousel.Index]
		page.ImageIndex = carousel.Index + 1
		page.ImageCount = carousel.Len
		page.HasCarousel = carousel.Len > 1
		page.PrevHref = imageHref(card.Href, carousel.Prev())
		page.NextHref = imageHref(card.Href, carousel.Next())
	}
	return page
}

func imageHref(base string, index int) string {
	if index == 0 {
		return base
	}
	return base + "?image=" + strconv.Itoa(index)
}

func buildCaseStudyPage(item models.Item, categories []models.Category, html services.CaseStudyHTML) CaseStudyPage {
	card := cards.Render(item, categories)
	page := CaseStudyPage{
		Title:    item.Title,
		Class:    "case-study case-study--" + string(card.Variant),
		Card:     card,
		Item:     item,
		Palette:  item.ColorPalette,
		BackHref: workHref(item.Category, "", gridLayout, 1),
	}
	if cs := item.CaseStudy; cs != nil {
		page.HasCaseStudy = true
		page.CaseStudy = html
		page.Process = cs.Process
		page.Results = cs.Results
		page.Technologies = cs.Technologies
		page.Testimonials = cs.Testimonials
	}
	return page
}

func activeClass(base string, active bool) string {
	if active {
		return base + " " + base + "--active"
	}
	return base
}
