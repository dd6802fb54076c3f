// Package engage is the durable engagement store: likes and dislikes,
// per-item comments, and free-form board posts, each backed by its own
// JSON document.
package engage

import "time"

// DefaultAuthor is used when a comment or post author is left blank.
const DefaultAuthor = "anonymous"

// VoteCount holds like/dislike tallies for one menu item.
type VoteCount struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Comment is one comment on a menu item or board post, append-only and
// chronological.
type Comment struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a free-form board post. ID is the post count at creation time;
// the board has no delete operation, so IDs cannot collide.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Comments  []Comment `json:"comments"`
}
