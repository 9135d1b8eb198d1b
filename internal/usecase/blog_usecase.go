package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	errBlogNotFound       = "blog not found"
	errBlogNotVisible     = "cannot view unpublished blog"
	errCannotUpdateBlog   = "cannot update other users blogs"
	errCannotDeleteBlog   = "cannot delete other users blogs"
	errCommentContentSize = "content must be at least 1 character long"
)

// BlogUseCaseImpl implements the IBlogUseCase interface
type BlogUseCaseImpl struct {
	blogRepo      contract.IBlogRepository
	notifications usecasecontract.INotificationUseCase
	validator     usecasecontract.IValidator
	uuidgen       contract.IUUIDGenerator
	clock         contract.IClock
	logger        usecasecontract.IAppLogger
}

// NewBlogUseCase creates a new instance of BlogUseCase
func NewBlogUseCase(
	blogRepo contract.IBlogRepository,
	notifications usecasecontract.INotificationUseCase,
	validator usecasecontract.IValidator,
	uuidgen contract.IUUIDGenerator,
	clock contract.IClock,
	logger usecasecontract.IAppLogger,
) *BlogUseCaseImpl {
	return &BlogUseCaseImpl{
		blogRepo:      blogRepo,
		notifications: notifications,
		validator:     validator,
		uuidgen:       uuidgen,
		clock:         clock,
		logger:        logger,
	}
}

// check if BlogUseCaseImpl implements the IBlogUseCase
var _ usecasecontract.IBlogUseCase = (*BlogUseCaseImpl)(nil)

// ListBlogs returns every blog to admins and published blogs to everyone else.
func (uc *BlogUseCaseImpl) ListBlogs(ctx context.Context, caller *entity.User) ([]*entity.Blog, error) {
	publishedOnly := !viewerOf(caller).IsAdmin()
	blogs, err := uc.blogRepo.ListBlogs(ctx, publishedOnly)
	if err != nil {
		return nil, internal(uc.logger, "failed to list blogs", err)
	}
	return blogs, nil
}

// GetBlog returns the blog with its view counter already incremented.
func (uc *BlogUseCaseImpl) GetBlog(ctx context.Context, caller *entity.User, blogID string) (*entity.Blog, error) {
	viewed, visible, err := uc.blogRepo.IncrementViewCountIfVisible(ctx, blogID, viewerOf(caller))
	if err != nil {
		return nil, internal(uc.logger, "failed to count blog view", err)
	}
	if viewed == nil {
		return nil, apperr.NotFound(errBlogNotFound)
	}
	if !visible {
		return nil, apperr.Forbidden(errBlogNotVisible)
	}
	metrics.IncBlogView()
	return viewed, nil
}

func (uc *BlogUseCaseImpl) CreateBlog(ctx context.Context, caller *entity.User, in usecasecontract.CreateBlogInput) (*entity.Blog, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}
	now := uc.clock.Now()
	blog := &entity.Blog{
		ID:           uc.uuidgen.NewID("blog"),
		Title:        in.Title,
		Content:      in.Content,
		Excerpt:      in.Excerpt,
		CoverImage:   in.CoverImage,
		Images:       entity.CopyStrings(in.Images),
		AuthorID:     caller.ID,
		AuthorName:   caller.Name,
		AuthorAvatar: caller.Avatar,
		Category:     in.Category,
		Tags:         entity.CopyStrings(in.Tags),
		Comments:     []entity.Comment{},
		IsPublished:  in.IsPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := uc.blogRepo.CreateBlog(ctx, blog)
	if err != nil {
		return nil, internal(uc.logger, "failed to create blog", err)
	}
	uc.logger.Infof("blog %s created by %s (published=%t)", created.ID, caller.ID, created.IsPublished)
	return created, nil
}

// UpdateBlog also drives the draft/published transition through IsPublished.
func (uc *BlogUseCaseImpl) UpdateBlog(ctx context.Context, caller *entity.User, blogID string, patch entity.BlogPatch) (*entity.Blog, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	blog, err := uc.loadBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(caller, blog.AuthorID, errCannotUpdateBlog); err != nil {
		return nil, err
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, apperr.InvalidInput("title must be at least 1 character long")
	}
	if patch.Content != nil && *patch.Content == "" {
		return nil, apperr.InvalidInput("content must be at least 1 character long")
	}
	updated, err := uc.blogRepo.UpdateBlog(ctx, blogID, patch)
	if err != nil {
		return nil, internal(uc.logger, "failed to update blog", err)
	}
	if updated == nil {
		return nil, apperr.NotFound(errBlogNotFound)
	}
	return updated, nil
}

func (uc *BlogUseCaseImpl) DeleteBlog(ctx context.Context, caller *entity.User, blogID string) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	blog, err := uc.loadBlog(ctx, blogID)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(caller, blog.AuthorID, errCannotDeleteBlog); err != nil {
		return err
	}
	deleted, err := uc.blogRepo.DeleteBlog(ctx, blogID)
	if err != nil {
		return internal(uc.logger, "failed to delete blog", err)
	}
	if !deleted {
		return apperr.NotFound(errBlogNotFound)
	}
	return nil
}

// LikeBlog adds one like per call. Blogs keep no record of who liked them.
func (uc *BlogUseCaseImpl) LikeBlog(ctx context.Context, caller *entity.User, blogID string) (*entity.Blog, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	blog, err := uc.blogRepo.IncrementLikeCount(ctx, blogID)
	if err != nil {
		return nil, internal(uc.logger, "failed to like blog", err)
	}
	if blog == nil {
		return nil, apperr.NotFound(errBlogNotFound)
	}
	if blog.AuthorID != caller.ID {
		uc.notifications.Notify(ctx, blog.AuthorID, entity.NotificationTypeLike,
			"New like",
			fmt.Sprintf("%s liked your blog %q", caller.Name, blog.Title),
			map[string]interface{}{"blogId": blog.ID, "userId": caller.ID})
	}
	return blog, nil
}

func (uc *BlogUseCaseImpl) CommentOnBlog(ctx context.Context, caller *entity.User, blogID, content string) (*entity.Blog, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, apperr.InvalidInput(errCommentContentSize)
	}
	if _, err := uc.loadBlog(ctx, blogID); err != nil {
		return nil, err
	}
	comment := entity.Comment{
		ID:         uc.uuidgen.NewID("comment"),
		BlogID:     blogID,
		UserID:     caller.ID,
		UserName:   caller.Name,
		UserAvatar: caller.Avatar,
		Content:    content,
		CreatedAt:  uc.clock.Now(),
	}
	blog, err := uc.blogRepo.AppendComment(ctx, blogID, comment)
	if err != nil {
		return nil, internal(uc.logger, "failed to add comment", err)
	}
	if blog == nil {
		return nil, apperr.NotFound(errBlogNotFound)
	}
	if blog.AuthorID != caller.ID {
		uc.notifications.Notify(ctx, blog.AuthorID, entity.NotificationTypeComment,
			"New comment",
			fmt.Sprintf("%s commented on your blog %q", caller.Name, blog.Title),
			map[string]interface{}{"blogId": blog.ID, "commentId": comment.ID})
	}
	return blog, nil
}

func (uc *BlogUseCaseImpl) loadBlog(ctx context.Context, blogID string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, internal(uc.logger, "failed to load blog", err)
	}
	if blog == nil {
		return nil, apperr.NotFound(errBlogNotFound)
	}
	return blog, nil
}
