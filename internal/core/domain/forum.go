package domain

// Category is the fixed set of forum categories.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryScience    Category = "Science"
	CategoryArt        Category = "Art"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryScience, CategoryArt:
		return true
	}
	return false
}

// Forum is a top-level discussion board. The slug is the forum's stable,
// URL-safe identity and never changes after creation.
type Forum struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}
