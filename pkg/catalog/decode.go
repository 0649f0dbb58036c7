package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"studio-portfolio/pkg/models"
)

type document struct {
	Categories []models.Category `yaml:"categories,omitempty"`
	Projects   []itemDocument    `yaml:"projects"`
}

type itemDocument struct {
	Title        string             `yaml:"title"`
	Category     string             `yaml:"category"`
	Description  string             `yaml:"description"`
	Image        string             `yaml:"image,omitempty"`
	Tags         []string           `yaml:"tags,omitempty"`
	Slug         string             `yaml:"slug"`
	Stats        statsDocument      `yaml:"stats"`
	VideoID      string             `yaml:"videoId,omitempty"`
	Duration     string             `yaml:"duration,omitempty"`
	Featured     bool               `yaml:"featured,omitempty"`
	Awards       []string           `yaml:"awards,omitempty"`
	ColorPalette []swatchDocument   `yaml:"colorPalette,omitempty"`
	Client       string             `yaml:"client,omitempty"`
	Year         string             `yaml:"year,omitempty"`
	Images       []string           `yaml:"images,omitempty"`
	CaseStudy    *caseStudyDocument `yaml:"caseStudy,omitempty"`
}

// statsDocument accepts both shapes so the union can be checked after decoding.
type statsDocument struct {
	Views      string `yaml:"views,omitempty"`
	Engagement string `yaml:"engagement,omitempty"`
	Status     string `yaml:"status,omitempty"`
	Progress   string `yaml:"progress,omitempty"`
}

type swatchDocument struct {
	Hex         string `yaml:"hex"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type testimonialDocument struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

type caseStudyDocument struct {
	Overview     string                `yaml:"overview"`
	Challenge    string                `yaml:"challenge"`
	Solution     string                `yaml:"solution"`
	Process      []string              `yaml:"process,omitempty"`
	Results      []string              `yaml:"results,omitempty"`
	Technologies []string              `yaml:"technologies,omitempty"`
	Testimonials []testimonialDocument `yaml:"testimonials,omitempty"`
}

// Decode parses a YAML catalog document and validates it.
func Decode(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]models.Item, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		items = append(items, p.toItem())
	}

	var categories []models.Category
	if len(doc.Categories) > 0 {
		categories = doc.Categories
	}
	return New(categories, items)
}

// Encode renders a catalog back into the YAML document format.
func Encode(c *Catalog) ([]byte, error) {
	doc := document{Categories: c.Categories()}
	for _, item := range c.items {
		doc.Projects = append(doc.Projects, fromItem(item))
	}
	return yaml.Marshal(doc)
}

func (s statsDocument) toStats() models.Stats {
	completed := s.Views != "" || s.Engagement != ""
	inProgress := s.Status != "" || s.Progress != ""
	switch {
	case completed && !inProgress:
		return models.CompletedStats{Views: s.Views, Engagement: s.Engagement}
	case inProgress && !completed:
		return models.InProgressStats{Status: s.Status, Progress: s.Progress}
	default:
		// nil fails validation in New
		return nil
	}
}

func (d itemDocument) toItem() models.Item {
	item := models.Item{
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Image:       d.Image,
		Tags:        d.Tags,
		Slug:        d.Slug,
		Stats:       d.Stats.toStats(),
		VideoID:     d.VideoID,
		Duration:    d.Duration,
		Featured:    d.Featured,
		Awards:      d.Awards,
		Client:      d.Client,
		Year:        d.Year,
		Images:      d.Images,
	}
	for _, s := range d.ColorPalette {
		item.ColorPalette = append(item.ColorPalette, models.Swatch(s))
	}
	if cs := d.CaseStudy; cs != nil {
		item.CaseStudy = &models.CaseStudy{
			Overview:     cs.Overview,
			Challenge:    cs.Challenge,
			Solution:     cs.Solution,
			Process:      cs.Process,
			Results:      cs.Results,
			Technologies: cs.Technologies,
		}
		for _, t := range cs.Testimonials {
			item.CaseStudy.Testimonials = append(item.CaseStudy.Testimonials, models.Testimonial(t))
		}
	}
	return item
}

func fromItem(item models.Item) itemDocument {
	d := itemDocument{
		Title:       item.Title,
		Category:    item.Category,
		Description: item.Description,
		Image:       item.Image,
		Tags:        item.Tags,
		Slug:        item.Slug,
		VideoID:     item.VideoID,
		Duration:    item.Duration,
		Featured:    item.Featured,
		Awards:      item.Awards,
		Client:      item.Client,
		Year:        item.Year,
		Images:      item.Images,
	}
	switch s := item.Stats.(type) {
	case models.CompletedStats:
		d.Stats = statsDocument{Views: s.Views, Engagement: s.Engagement}
	case models.InProgressStats:
		d.Stats = statsDocument{Status: s.Status, Progress: s.Progress}
	}
	for _, s := range item.ColorPalette {
		d.ColorPalette = append(d.ColorPalette, swatchDocument(s))
	}
	if cs := item.CaseStudy; cs != nil {
		d.CaseStudy = &caseStudyDocument{
			Overview:     cs.Overview,
			Challenge:    cs.Challenge,
			Solution:     cs.Solution,
			Process:      cs.Process,
			Results:      cs.Results,
			Technologies: cs.Technologies,
		}
		for _, t := range cs.Testimonials {
			d.CaseStudy.Testimonials = append(d.CaseStudy.Testimonials, testimonialDocument(t))
		}
	}
	return d
}
