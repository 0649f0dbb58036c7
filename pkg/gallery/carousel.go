package gallery

// Carousel is the image index of a project detail page. Next and Prev wrap around.
type Carousel struct {
	Len   int
	Index int
}

// NewCarousel clamps index into [0, n).
func NewCarousel(n, index int) Carousel {
	if n <= 0 {
		return Carousel{}
	}
	return Carousel{Len: n, Index: max(0, min(index, n-1))}
}

// Next returns the index after the current one
func (c Carousel) Next() int {
	if c.Len == 0 {
		return 0
	}
	return (c.Index + 1) % c.Len
}

// Prev returns the index before the current one
func (c Carousel) Prev() int {
	if c.Len == 0 {
		return 0
	}
	return (c.Index - 1 + c.Len) % c.Len
}
