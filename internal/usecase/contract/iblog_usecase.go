package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// CreateBlogInput carries the author-supplied fields of a new blog.
type CreateBlogInput struct {
	Title       string `validate:"required,min=1"`
	Content     string `validate:"required,min=1"`
	Excerpt     string
	CoverImage  string
	Images      []string
	Category    string
	Tags        []string
	IsPublished bool
}

type IBlogUseCase interface {
	ListBlogs(ctx context.Context, caller *entity.User) ([]*entity.Blog, error)
	// GetBlog counts a view on every successful call.
	GetBlog(ctx context.Context, caller *entity.User, blogID string) (*entity.Blog, error)
	CreateBlog(ctx context.Context, caller *entity.User, in CreateBlogInput) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, caller *entity.User, blogID string, patch entity.BlogPatch) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, caller *entity.User, blogID string) error
	LikeBlog(ctx context.Context, caller *entity.User, blogID string) (*entity.Blog, error)
	CommentOnBlog(ctx context.Context, caller *entity.User, blogID, content string) (*entity.Blog, error)
}
