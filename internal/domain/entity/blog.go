package entity

import "time"

// Blog is a long-form article. Author fields are a snapshot taken at creation.
type Blog struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt"`
	CoverImage   string    `json:"coverImage"`
	Images       []string  `json:"images"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Likes        int       `json:"likes"`
	Views        int       `json:"views"`
	Comments     []Comment `json:"comments"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Comment is embedded in exactly one Blog and is append-only.
type Comment struct {
	ID         string    `json:"id"`
	BlogID     string    `json:"blogId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BlogPatch is a shallow-merge update. Nil fields are left untouched.
type BlogPatch struct {
	Title       *string
	Content     *string
	Excerpt     *string
	CoverImage  *string
	Images      []string
	Category    *string
	Tags        []string
	IsPublished *bool
}

// Clone returns a deep copy so callers never share slices with the store.
func (b *Blog) Clone() *Blog {
	if b == nil {
		return nil
	}
	c := *b
	c.Images = CopyStrings(b.Images)
	c.Tags = CopyStrings(b.Tags)
	c.Comments = append(make([]Comment, 0, len(b.Comments)), b.Comments...)
	return &c
}

// VisibleTo reports whether a caller may read the blog.
// Unpublished blogs are visible only to the author or an admin.
func (b *Blog) VisibleTo(caller *User) bool {
	if b.IsPublished {
		return true
	}
	if caller == nil {
		return false
	}
	return caller.IsAdmin() || caller.ID == b.AuthorID
}
