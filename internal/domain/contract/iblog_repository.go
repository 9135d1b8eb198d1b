package contract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// IBlogRepository provides methods for managing blog data.
// Every mutation refreshes UpdatedAt. Methods returning *entity.Blog return nil when the id is absent.
type IBlogRepository interface {
	CreateBlog(ctx context.Context, blog *entity.Blog) (*entity.Blog, error)
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	// ListBlogs returns blogs in insertion order; publishedOnly filters drafts out.
	ListBlogs(ctx context.Context, publishedOnly bool) ([]*entity.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, patch entity.BlogPatch) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, blogID string) (bool, error)
	// IncrementViewCountIfVisible checks visibility for viewer and counts the
	// view under one lock. A hidden blog is returned unchanged with visible false.
	IncrementViewCountIfVisible(ctx context.Context, blogID string, viewer *entity.User) (blog *entity.Blog, visible bool, err error)
	IncrementLikeCount(ctx context.Context, blogID string) (*entity.Blog, error)
	AppendComment(ctx context.Context, blogID string, comment entity.Comment) (*entity.Blog, error)
}
