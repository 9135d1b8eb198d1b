package mocks

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// MockBlogUsecase is a mock implementation of the IBlogUseCase interface
type MockBlogUsecase struct {
	ShouldFailNotFound  bool
	ShouldFailForbidden bool

	MockBlog   entity.Blog
	LastCaller *entity.User
	LastInput  usecasecontract.CreateBlogInput
	LastPatch  entity.BlogPatch
}

var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	return &MockBlogUsecase{
		MockBlog: entity.Blog{
			ID:          "blog-1",
			Title:       "Mock blog",
			Content:     "Body",
			AuthorID:    "user-1",
			Comments:    []entity.Comment{},
			IsPublished: true,
		},
	}
}

func (m *MockBlogUsecase) fail() error {
	if m.ShouldFailNotFound {
		return apperr.NotFound("blog not found")
	}
	if m.ShouldFailForbidden {
		return apperr.Forbidden("cannot update other users blogs")
	}
	return nil
}

func (m *MockBlogUsecase) blog() *entity.Blog {
	return m.MockBlog.Clone()
}

func (m *MockBlogUsecase) ListBlogs(ctx context.Context, caller *entity.User) ([]*entity.Blog, error) {
	m.LastCaller = caller
	return []*entity.Blog{m.blog()}, nil
}

func (m *MockBlogUsecase) GetBlog(ctx context.Context, caller *entity.User, blogID string) (*entity.Blog, error) {
	m.LastCaller = caller
	if err := m.fail(); err != nil {
		return nil, err
	}
	m.MockBlog.Views++
	return m.blog(), nil
}

func (m *MockBlogUsecase) CreateBlog(ctx context.Context, caller *entity.User, in usecasecontract.CreateBlogInput) (*entity.Blog, error) {
	m.LastCaller = caller
	m.LastInput = in
	b := m.blog()
	b.Title = in.Title
	b.Content = in.Content
	b.IsPublished = in.IsPublished
	return b, nil
}

func (m *MockBlogUsecase) UpdateBlog(ctx context.Context, caller *entity.User, blogID string, patch entity.BlogPatch) (*entity.Blog, error) {
	m.LastCaller = caller
	m.LastPatch = patch
	if err := m.fail(); err != nil {
		return nil, err
	}
	return m.blog(), nil
}

func (m *MockBlogUsecase) DeleteBlog(ctx context.Context, caller *entity.User, blogID string) error {
	m.LastCaller = caller
	return m.fail()
}

func (m *MockBlogUsecase) LikeBlog(ctx context.Context, caller *entity.User, blogID string) (*entity.Blog, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	m.MockBlog.Likes++
	return m.blog(), nil
}

func (m *MockBlogUsecase) CommentOnBlog(ctx context.Context, caller *entity.User, blogID, content string) (*entity.Blog, error) {
	if err := m.fail(); err != nil {
		return nil, err
	}
	m.MockBlog.Comments = append(m.MockBlog.Comments, entity.Comment{ID: "comment-1", BlogID: blogID, Content: content})
	return m.blog(), nil
}
