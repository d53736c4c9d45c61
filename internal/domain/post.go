package domain

import "time"

// Post represents a single article written by a member.
// AuthorName is denormalized from the author's nickname when a post is read
// back from the store; it is not persisted on the posts table itself.
// Ordering by ID defines recency: the highest ID is the latest post.
type Post struct {
	ID         int64
	AuthorID   int64
	AuthorName string
	Title      string
	Content    string
	CreateDate time.Time
	ModifyDate time.Time
}

// NewPost creates a new Post owned by the given author and sets the
// creation/modification timestamps. The ID is assigned by the store on
// creation. Returns an error if validation fails.
func NewPost(author *Member, title, content string) (*Post, error) {
	if author == nil {
		return nil, ErrNoAuthor
	}

	now := time.Now()
	post := &Post{
		AuthorID:   author.ID,
		AuthorName: author.Nickname,
		Title:      title,
		Content:    content,
		CreateDate: now,
		ModifyDate: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.AuthorID == 0 {
		return ErrNoAuthor
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
