package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-portfolio/pkg/models"
)

func makeItems(categories ...string) []models.Item {
	items := make([]models.Item, 0, len(categories))
	for i, c := range categories {
		items = append(items, models.Item{
			Title:    fmt.Sprintf("Project %d", i+1),
			Category: c,
			Slug:     fmt.Sprintf("project-%d", i+1),
			Tags:     []string{c},
			Stats:    models.CompletedStats{Views: "1K", Engagement: "1%"},
		})
	}
	return items
}

func slugs(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Slug)
	}
	return out
}

func TestFilterKeepsOrderAndMembership(t *testing.T) {
	items := makeItems("social", "web", "social", "video", "social")

	got := Filter(items, "social")
	assert.Equal(t, []string{"project-1", "project-3", "project-5"}, slugs(got))
	for _, item := range got {
		assert.Equal(t, "social", item.Category)
	}

	assert.Equal(t, items, Filter(items, models.AllCategories))
	assert.Empty(t, Filter(items, "podcast"))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := makeItems("web", "social", "web")
	before := slugs(items)
	_ = Filter(items, "web")
	assert.Equal(t, before, slugs(items))
}

func TestSearch(t *testing.T) {
	items := []models.Item{
		{Slug: "a", Title: "Nexus Brand", Description: "identity"},
		{Slug: "b", Title: "Gradus", Description: "AI exams"},
		{Slug: "c", Title: "Posters", Tags: []string{"Print", "Typography"}},
	}
	assert.Equal(t, []string{"a"}, slugs(Search(items, "nexus")))
	assert.Equal(t, []string{"b"}, slugs(Search(items, "  EXAMS ")))
	assert.Equal(t, []string{"c"}, slugs(Search(items, "typo")))
	assert.Equal(t, items, Search(items, "   "))
	assert.Empty(t, Search(items, "nothing"))
}

func TestFeatured(t *testing.T) {
	items := makeItems("web", "social", "video")
	items[0].Featured = true
	items[2].Featured = true
	assert.Equal(t, []string{"project-1", "project-3"}, slugs(Featured(items)))
}

func TestPaginateCoversEverythingOnce(t *testing.T) {
	for n := 0; n <= 11; n++ {
		for size := 1; size <= 4; size++ {
			items := makeItems(make([]string, n)...)
			total := TotalPages(n, size)

			seen := []string{}
			for p := 1; p <= total; p++ {
				page := Paginate(items, size, p)
				require.Equal(t, total, page.TotalPages)
				require.NotEmpty(t, page.Items)
				require.LessOrEqual(t, len(page.Items), size)
				seen = append(seen, slugs(page.Items)...)
			}
			require.Equal(t, slugs(items), seen, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginateBoundaries(t *testing.T) {
	empty := Paginate(nil, 2, 1)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)

	items := makeItems("a", "b", "c")
	assert.Empty(t, Paginate(items, 2, 3).Items)
	assert.Empty(t, Paginate(items, 2, 0).Items)
	assert.Equal(t, 0, Paginate(items, 0, 1).TotalPages)
}

func TestPaginatedSliceCannotClobberSource(t *testing.T) {
	items := makeItems("a", "b", "c", "d")
	page := Paginate(items, 2, 1)
	_ = append(page.Items, models.Item{Slug: "intruder"})
	assert.Equal(t, "project-3", items[2].Slug)
}

// Scenario A: five items, pageSize 2, filter social.
func TestScenarioSocialFitsOnePage(t *testing.T) {
	items := makeItems("social", "social", "branding", "web", "video")
	social := Filter(items, "social")
	require.Len(t, social, 2)

	page := Paginate(social, 2, 1)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, slugs(social), slugs(page.Items))
}

// Scenario B: nine items, pageSize 2, last page holds the remainder.
func TestScenarioRemainderPage(t *testing.T) {
	items := makeItems("web", "web", "web", "web", "web", "web", "web", "web", "web")
	page := Paginate(Filter(items, models.AllCategories), 2, 5)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, []string{"project-9"}, slugs(page.Items))
}

// Scenario C: changing category while on page 3 returns to page 1.
func TestSelectCategoryResetsPage(t *testing.T) {
	items := makeItems("social", "web", "social", "web", "social", "web", "video")
	c := NewController(items, 2)
	c.GoToPage(3)
	require.Equal(t, 3, c.State().Page)

	c.SelectCategory("web")
	view := c.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, "web", view.Category)
	assert.Equal(t, []string{"project-2", "project-4"}, slugs(view.Items))
	assert.Equal(t, 2, view.TotalPages)
}

func TestSelectCategoryIsIdempotent(t *testing.T) {
	items := makeItems("social", "web", "social")
	c := NewController(items, 2)

	c.SelectCategory("social")
	first := c.View()
	c.SelectCategory("social")
	second := c.View()

	assert.Equal(t, 1, second.Page)
	assert.Equal(t, first, second)
}

func TestGoToPageClamps(t *testing.T) {
	c := NewController(makeItems("a", "a", "a", "a", "a"), 2)

	c.GoToPage(99)
	assert.Equal(t, 3, c.State().Page)
	c.GoToPage(-4)
	assert.Equal(t, 1, c.State().Page)

	c.NextPage()
	c.NextPage()
	c.NextPage()
	assert.Equal(t, 3, c.State().Page)
	c.PrevPage()
	assert.Equal(t, 2, c.State().Page)
}

func TestEmptyGalleryStaysOnPageOne(t *testing.T) {
	c := NewController(makeItems("web"), 2)
	c.SelectCategory("video")
	c.NextPage()

	view := c.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 0, view.TotalPages)
	assert.Empty(t, view.Items)
	assert.False(t, view.HasNext())
	assert.False(t, view.HasPrev())
}

func TestSetSearchResetsPage(t *testing.T) {
	items := makeItems("web", "web", "web", "social")
	c := NewController(items, 2)
	c.GoToPage(2)

	c.SetSearch("social")
	view := c.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, []string{"project-4"}, slugs(view.Items))
}

func TestRestoreClampsPage(t *testing.T) {
	items := makeItems("web", "web", "web", "social")
	c := NewController(items, 2)

	c.Restore(State{Category: "web", Page: 7})
	assert.Equal(t, State{Category: "web", Page: 2}, c.State())

	c.Restore(State{})
	assert.Equal(t, State{Category: models.AllCategories, Page: 1}, c.State())
}

func TestViewRecomputesAfterEveryTransition(t *testing.T) {
	items := makeItems("web", "social", "web", "social")
	c := NewController(items, 1)

	assert.Equal(t, 4, c.View().TotalPages)
	c.SelectCategory("social")
	assert.Equal(t, 2, c.View().TotalPages)
	c.NextPage()
	assert.Equal(t, []string{"project-4"}, slugs(c.View().Items))
	assert.True(t, c.View().HasPrev())
}

func TestCarousel(t *testing.T) {
	c := NewCarousel(3, 0)
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Prev())

	c = NewCarousel(3, 10)
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, 0, c.Next())

	empty := NewCarousel(0, 5)
	assert.Equal(t, 0, empty.Index)
	assert.Equal(t, 0, empty.Next())
	assert.Equal(t, 0, empty.Prev())
}
