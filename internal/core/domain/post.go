package domain

import "time"

// Post is a thread inside a forum. Number is the post's position within its
// owning forum, assigned densely starting at 1; it is distinct from ID,
// which is globally unique.
type Post struct {
	ID        string     `json:"id"`
	ForumID   string     `json:"forumId"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	AuthorID  string     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
