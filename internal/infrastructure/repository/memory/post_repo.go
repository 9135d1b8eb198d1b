package memory

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type PostRepository struct {
	store *Store
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository(store *Store) *PostRepository {
	return &PostRepository{store: store}
}

func (r *PostRepository) CreatePost(ctx context.Context, post *entity.CommunityPost) (*entity.CommunityPost, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := post.Clone("")
	s.posts[stored.ID] = stored
	s.postOrder.add(stored.ID)
	return stored.Clone(""), nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, postID, viewerID string) (*entity.CommunityPost, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.posts[postID].Clone(viewerID), nil
}

func (r *PostRepository) ListPosts(ctx context.Context, viewerID string) ([]*entity.CommunityPost, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*entity.CommunityPost, 0, s.postOrder.len())
	s.postOrder.each(func(id string) bool {
		posts = append(posts, s.posts[id].Clone(viewerID))
		return true
	})
	return posts, nil
}

func (r *PostRepository) UpdatePost(ctx context.Context, postID string, patch entity.PostPatch, viewerID string) (*entity.CommunityPost, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return nil, nil
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Images != nil {
		p.Images = entity.CopyStrings(patch.Images)
	}
	if patch.CarBrand != nil {
		brand := *patch.CarBrand
		p.CarBrand = &brand
	}
	if patch.CarModel != nil {
		model := *patch.CarModel
		p.CarModel = &model
	}
	return p.Clone(viewerID), nil
}

func (r *PostRepository) DeletePost(ctx context.Context, postID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return false, nil
	}
	delete(s.posts, postID)
	s.postOrder.remove(postID)
	return true, nil
}

func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (*entity.CommunityPost, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return nil, nil
	}
	if p.LikedBy == nil {
		p.LikedBy = make(map[string]struct{})
	}
	if _, liked := p.LikedBy[userID]; liked {
		delete(p.LikedBy, userID)
		p.Likes--
	} else {
		p.LikedBy[userID] = struct{}{}
		p.Likes++
	}
	return p.Clone(userID), nil
}
