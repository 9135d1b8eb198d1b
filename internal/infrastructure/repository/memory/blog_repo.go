package memory

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// BlogRepository is the in-memory implementation of contract.IBlogRepository.
type BlogRepository struct {
	store *Store
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

func NewBlogRepository(store *Store) *BlogRepository {
	return &BlogRepository{store: store}
}

// CreateBlog inserts unconditionally; an id collision overwrites.
func (r *BlogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) (*entity.Blog, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := blog.Clone()
	s.blogs[stored.ID] = stored
	s.blogOrder.add(stored.ID)
	return stored.Clone(), nil
}

func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.blogs[blogID].Clone(), nil
}

func (r *BlogRepository) ListBlogs(ctx context.Context, publishedOnly bool) ([]*entity.Blog, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	blogs := make([]*entity.Blog, 0, s.blogOrder.len())
	s.blogOrder.each(func(id string) bool {
		if b := s.blogs[id]; !publishedOnly || b.IsPublished {
			blogs = append(blogs, b.Clone())
		}
		return true
	})
	return blogs, nil
}

// mutate applies fn to the stored blog and refreshes UpdatedAt.
func (r *BlogRepository) mutate(blogID string, fn func(b *entity.Blog)) *entity.Blog {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blogs[blogID]
	if !ok {
		return nil
	}
	fn(b)
	b.UpdatedAt = s.now()
	return b.Clone()
}

func (r *BlogRepository) UpdateBlog(ctx context.Context, blogID string, patch entity.BlogPatch) (*entity.Blog, error) {
	return r.mutate(blogID, func(b *entity.Blog) {
		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.Content != nil {
			b.Content = *patch.Content
		}
		if patch.Excerpt != nil {
			b.Excerpt = *patch.Excerpt
		}
		if patch.CoverImage != nil {
			b.CoverImage = *patch.CoverImage
		}
		if patch.Images != nil {
			b.Images = entity.CopyStrings(patch.Images)
		}
		if patch.Category != nil {
			b.Category = *patch.Category
		}
		if patch.Tags != nil {
			b.Tags = entity.CopyStrings(patch.Tags)
		}
		if patch.IsPublished != nil {
			b.IsPublished = *patch.IsPublished
		}
	}), nil
}

func (r *BlogRepository) DeleteBlog(ctx context.Context, blogID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[blogID]; !ok {
		return false, nil
	}
	delete(s.blogs, blogID)
	s.blogOrder.remove(blogID)
	return true, nil
}

func (r *BlogRepository) IncrementViewCountIfVisible(ctx context.Context, blogID string, viewer *entity.User) (*entity.Blog, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blogs[blogID]
	if !ok {
		return nil, false, nil
	}
	if !b.VisibleTo(viewer) {
		return b.Clone(), false, nil
	}
	b.Views++
	b.UpdatedAt = s.now()
	return b.Clone(), true, nil
}

func (r *BlogRepository) IncrementLikeCount(ctx context.Context, blogID string) (*entity.Blog, error) {
	return r.mutate(blogID, func(b *entity.Blog) { b.Likes++ }), nil
}

func (r *BlogRepository) AppendComment(ctx context.Context, blogID string, comment entity.Comment) (*entity.Blog, error) {
	return r.mutate(blogID, func(b *entity.Blog) {
		b.Comments = append(b.Comments, comment)
	}), nil
}
