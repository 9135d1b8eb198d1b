package contract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// IPostRepository manages community posts. viewerID resolves IsLiked on returned posts.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.CommunityPost) (*entity.CommunityPost, error)
	GetPostByID(ctx context.Context, postID, viewerID string) (*entity.CommunityPost, error)
	ListPosts(ctx context.Context, viewerID string) ([]*entity.CommunityPost, error)
	UpdatePost(ctx context.Context, postID string, patch entity.PostPatch, viewerID string) (*entity.CommunityPost, error)
	DeletePost(ctx context.Context, postID string) (bool, error)
	// ToggleLike flips userID's like on the post and adjusts the counter by one.
	ToggleLike(ctx context.Context, postID, userID string) (*entity.CommunityPost, error)
}
