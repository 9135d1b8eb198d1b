package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type CreatePostInput struct {
	Content  string `validate:"required,min=1"`
	Images   []string
	CarBrand *string
	CarModel *string
}

type IPostUseCase interface {
	ListPosts(ctx context.Context, caller *entity.User) ([]*entity.CommunityPost, error)
	CreatePost(ctx context.Context, caller *entity.User, in CreatePostInput) (*entity.CommunityPost, error)
	UpdatePost(ctx context.Context, caller *entity.User, postID string, patch entity.PostPatch) (*entity.CommunityPost, error)
	DeletePost(ctx context.Context, caller *entity.User, postID string) error
	// LikePost toggles the caller's like.
	LikePost(ctx context.Context, caller *entity.User, postID string) (*entity.CommunityPost, error)
}
