package models

// AllCategories is the filter value that selects every item
const AllCategories = "all"

// Category is one entry of the closed set of project categories
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Stats is either CompletedStats or InProgressStats, never both
type Stats interface {
	isStats()
}

// CompletedStats are the display metrics of published work
type CompletedStats struct {
	Views      string `json:"views"`
	Engagement string `json:"engagement"`
}

// InProgressStats describe work that has not shipped yet
type InProgressStats struct {
	Status   string `json:"status"`
	Progress string `json:"progress"`
}

func (CompletedStats) isStats()  {}
func (InProgressStats) isStats() {}

// Swatch is a brand color shown on branding cards and case studies
type Swatch struct {
	Hex         string `json:"hex"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Testimonial is a client quote on a case study
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// CaseStudy holds the long-form write-up of a project.
// Overview, Challenge and Solution are markdown.
type CaseStudy struct {
	Overview     string        `json:"overview"`
	Challenge    string        `json:"challenge"`
	Solution     string        `json:"solution"`
	Process      []string      `json:"process,omitempty"`
	Results      []string      `json:"results,omitempty"`
	Technologies []string      `json:"technologies,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
}

// Item represents one portfolio entry
type Item struct {
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	Image        string     `json:"image,omitempty"`
	Tags         []string   `json:"tags"`
	Slug         string     `json:"slug"`
	Stats        Stats      `json:"stats"`
	VideoID      string     `json:"videoId,omitempty"`
	Duration     string     `json:"duration,omitempty"`
	Featured     bool       `json:"featured,omitempty"`
	Awards       []string   `json:"awards,omitempty"`
	ColorPalette []Swatch   `json:"colorPalette,omitempty"`
	Client       string     `json:"client,omitempty"`
	Year         string     `json:"year,omitempty"`
	Images       []string   `json:"images,omitempty"`
	CaseStudy    *CaseStudy `json:"caseStudy,omitempty"`
}

// CategoryCount is a category together with the number of items filed under it
type CategoryCount struct {
	Category
	Count int `json:"count"`
}
