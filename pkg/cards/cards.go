// Package cards turns catalog items into render-ready cards. The category of
// an item picks one of a closed set of variants; anything unmapped gets the
// default card.
package cards

import (
	"fmt"
	"net/url"

	"studio-portfolio/pkg/models"
)

// Variant is the presentation strategy of a card
type Variant string

const (
	VideoCard    Variant = "video"
	BrandingCard Variant = "branding"
	SocialCard   Variant = "social"
	WebsiteCard  Variant = "website"
	GraphicsCard Variant = "graphics"
	DefaultCard  Variant = "default"
)

// PlaceholderImage is shown when an item has no image
const PlaceholderImage = "/assets/img/placeholder.svg"

const (
	projectRoute   = "/project/"
	caseStudyRoute = "/case-study/"
	vimeoPlayerURL = "https://player.vimeo.com/video/"
)

type strategy struct {
	variant Variant
	surface string
	badge   string
	route   string
}

var dispatch = map[string]strategy{
	"video":    {variant: VideoCard, surface: "glass", route: projectRoute},
	"branding": {variant: BrandingCard, surface: "gradient", route: caseStudyRoute},
	"social":   {variant: SocialCard, surface: "neon", route: projectRoute},
	"web":      {variant: WebsiteCard, surface: "minimal", badge: "Live Preview", route: caseStudyRoute},
	"graphics": {variant: GraphicsCard, surface: "glass", badge: "Print Ready", route: projectRoute},
}

var fallback = strategy{variant: DefaultCard, surface: "glass", route: projectRoute}

// Card is what every variant renders: title, description, stats, tags and a
// detail link, plus the variant-specific extras.
type Card struct {
	Variant       Variant  `json:"variant"`
	Surface       string   `json:"surface"`
	Badge         string   `json:"badge,omitempty"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CategoryLabel string   `json:"categoryLabel"`
	Image         string   `json:"image,omitempty"`
	Tags          []string `json:"tags"`
	Stats         Stats    `json:"stats"`
	Href          string   `json:"href"`

	Player   *Player         `json:"player,omitempty"`
	Duration string          `json:"duration,omitempty"`
	Awards   int             `json:"awards,omitempty"`
	Palette  []models.Swatch `json:"palette,omitempty"`
	Featured bool            `json:"featured,omitempty"`
}

// Stats is the flattened stats block. Exactly one of Completed and InProgress
// is true, matching the shape the item carried.
type Stats struct {
	Completed  bool   `json:"completed"`
	InProgress bool   `json:"inProgress"`
	Views      string `json:"views,omitempty"`
	Engagement string `json:"engagement,omitempty"`
	Status     string `json:"status,omitempty"`
	Progress   string `json:"progress,omitempty"`
}

// Player is what the embedded video player needs
type Player struct {
	VideoID  string `json:"videoId"`
	Title    string `json:"title"`
	AutoPlay bool   `json:"autoPlay"`
	Loop     bool   `json:"loop"`
	Muted    bool   `json:"muted"`
	EmbedURL string `json:"embedUrl"`
}

// ClassName is the CSS class list of the card: the base class plus variant
// and surface modifiers.
func (c Card) ClassName() string {
	return "card card--" + string(c.Variant) + " card--" + c.Surface
}

// VariantFor returns the variant used for a category
func VariantFor(category string) Variant {
	return strategyFor(category).variant
}

// DetailHref returns the detail page of an item: case studies for branding and
// web work, project pages for everything else.
func DetailHref(item models.Item) string {
	return strategyFor(item.Category).route + url.PathEscape(item.Slug)
}

// IsCaseStudy reports whether the category links to a case study
func IsCaseStudy(category string) bool {
	return strategyFor(category).route == caseStudyRoute
}

func strategyFor(category string) strategy {
	if s, ok := dispatch[category]; ok {
		return s
	}
	return fallback
}

// Render builds the card for an item. categories supplies display labels;
// an unknown category shows its raw id.
func Render(item models.Item, categories []models.Category) Card {
	s := strategyFor(item.Category)

	card := Card{
		Variant:       s.variant,
		Surface:       s.surface,
		Badge:         s.badge,
		Title:         item.Title,
		Description:   item.Description,
		CategoryLabel: labelFor(item.Category, categories),
		Image:         item.Image,
		Tags:          append([]string{}, item.Tags...),
		Stats:         renderStats(item.Stats),
		Href:          s.route + url.PathEscape(item.Slug),
		Featured:      item.Featured,
	}
	if card.Image == "" && s.variant != VideoCard {
		card.Image = PlaceholderImage
	}

	switch s.variant {
	case VideoCard:
		card.Duration = item.Duration
		card.Awards = len(item.Awards)
		// no videoId: the card still renders, just without a player
		if item.VideoID != "" {
			card.Player = NewPlayer(item.VideoID, item.Title)
		}
		if card.Player == nil && card.Image == "" {
			card.Image = PlaceholderImage
		}
	case BrandingCard:
		n := min(3, len(item.ColorPalette))
		card.Palette = append([]models.Swatch{}, item.ColorPalette[:n]...)
	}

	return card
}

// RenderAll renders items in order
func RenderAll(items []models.Item, categories []models.Category) []Card {
	out := make([]Card, 0, len(items))
	for _, item := range items {
		out = append(out, Render(item, categories))
	}
	return out
}

// NewPlayer returns a muted, non-looping, click-to-play player.
func NewPlayer(videoID, title string) *Player {
	p := &Player{VideoID: videoID, Title: title, Muted: true}
	p.EmbedURL = fmt.Sprintf("%s%s?autoplay=%d&loop=%d&muted=%d&dnt=1",
		vimeoPlayerURL, url.PathEscape(videoID), flag(p.AutoPlay), flag(p.Loop), flag(p.Muted))
	return p
}

func renderStats(stats models.Stats) Stats {
	switch s := stats.(type) {
	case models.CompletedStats:
		return Stats{Completed: true, Views: s.Views, Engagement: s.Engagement}
	case models.InProgressStats:
		return Stats{InProgress: true, Status: s.Status, Progress: s.Progress}
	default:
		// the catalog rejects this; render no stats rather than invent any
		return Stats{}
	}
}

func labelFor(category string, categories []models.Category) string {
	for _, c := range categories {
		if c.ID == category {
			return c.Label
		}
	}
	return category
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
