package usecase

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	errPostNotFound     = "post not found"
	errCannotUpdatePost = "cannot update other users posts"
	errCannotDeletePost = "cannot delete other users posts"
)

type PostUsecase struct {
	postRepo  contract.IPostRepository
	validator usecasecontract.IValidator
	uuidgen   contract.IUUIDGenerator
	clock     contract.IClock
	logger    usecasecontract.IAppLogger
}

func NewPostUsecase(
	postRepo contract.IPostRepository,
	validator usecasecontract.IValidator,
	uuidgen contract.IUUIDGenerator,
	clock contract.IClock,
	logger usecasecontract.IAppLogger,
) *PostUsecase {
	return &PostUsecase{
		postRepo:  postRepo,
		validator: validator,
		uuidgen:   uuidgen,
		clock:     clock,
		logger:    logger,
	}
}

var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

// ListPosts returns the feed with isLiked resolved for the caller.
func (uc *PostUsecase) ListPosts(ctx context.Context, caller *entity.User) ([]*entity.CommunityPost, error) {
	posts, err := uc.postRepo.ListPosts(ctx, viewerID(caller))
	if err != nil {
		return nil, internal(uc.logger, "failed to list posts", err)
	}
	return posts, nil
}

func (uc *PostUsecase) CreatePost(ctx context.Context, caller *entity.User, in usecasecontract.CreatePostInput) (*entity.CommunityPost, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}
	post := &entity.CommunityPost{
		ID:         uc.uuidgen.NewID("post"),
		UserID:     caller.ID,
		UserName:   caller.Name,
		UserAvatar: caller.Avatar,
		Content:    in.Content,
		Images:     entity.CopyStrings(in.Images),
		CarBrand:   in.CarBrand,
		CarModel:   in.CarModel,
		LikedBy:    map[string]struct{}{},
		CreatedAt:  uc.clock.Now(),
	}
	created, err := uc.postRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, internal(uc.logger, "failed to create post", err)
	}
	return created, nil
}

func (uc *PostUsecase) UpdatePost(ctx context.Context, caller *entity.User, postID string, patch entity.PostPatch) (*entity.CommunityPost, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	post, err := uc.loadPost(ctx, postID, caller.ID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(caller, post.UserID, errCannotUpdatePost); err != nil {
		return nil, err
	}
	if patch.Content != nil && *patch.Content == "" {
		return nil, apperr.InvalidInput("content must be at least 1 character long")
	}
	updated, err := uc.postRepo.UpdatePost(ctx, postID, patch, caller.ID)
	if err != nil {
		return nil, internal(uc.logger, "failed to update post", err)
	}
	if updated == nil {
		return nil, apperr.NotFound(errPostNotFound)
	}
	return updated, nil
}

func (uc *PostUsecase) DeletePost(ctx context.Context, caller *entity.User, postID string) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	post, err := uc.loadPost(ctx, postID, caller.ID)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(caller, post.UserID, errCannotDeletePost); err != nil {
		return err
	}
	deleted, err := uc.postRepo.DeletePost(ctx, postID)
	if err != nil {
		return internal(uc.logger, "failed to delete post", err)
	}
	if !deleted {
		return apperr.NotFound(errPostNotFound)
	}
	return nil
}

func (uc *PostUsecase) LikePost(ctx context.Context, caller *entity.User, postID string) (*entity.CommunityPost, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	post, err := uc.postRepo.ToggleLike(ctx, postID, caller.ID)
	if err != nil {
		return nil, internal(uc.logger, "failed to like post", err)
	}
	if post == nil {
		return nil, apperr.NotFound(errPostNotFound)
	}
	return post, nil
}

func (uc *PostUsecase) loadPost(ctx context.Context, postID, viewerID string) (*entity.CommunityPost, error) {
	post, err := uc.postRepo.GetPostByID(ctx, postID, viewerID)
	if err != nil {
		return nil, internal(uc.logger, "failed to load post", err)
	}
	if post == nil {
		return nil, apperr.NotFound(errPostNotFound)
	}
	return post, nil
}
