package memory

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type UserRepository struct {
	store *Store
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	c.FavoriteBrands = entity.CopyStrings(u.FavoriteBrands)
	return &c
}

func (r *UserRepository) CreateUserIfEmailAbsent(ctx context.Context, user *entity.User) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emailIndex[user.Email]; taken {
		return false, nil
	}
	s.putUserLocked(user)
	return true, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putUserLocked(user)
	return nil
}

// putUserLocked inserts or overwrites a user and keeps the email index pointing
// at the first holder of each address.
func (s *Store) putUserLocked(user *entity.User) {
	if prev, ok := s.users[user.ID]; ok && prev.Email != user.Email {
		s.users[user.ID] = cloneUser(user)
		s.reindexEmailLocked(prev.Email)
	} else {
		s.users[user.ID] = cloneUser(user)
	}
	s.userOrder.add(user.ID)
	if _, ok := s.emailIndex[user.Email]; !ok {
		s.emailIndex[user.Email] = user.ID
	}
}

func (s *Store) reindexEmailLocked(email string) {
	delete(s.emailIndex, email)
	s.userOrder.each(func(id string) bool {
		if u, ok := s.users[id]; ok && u.Email == email {
			s.emailIndex[email] = id
			return false
		}
		return true
	})
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneUser(s.users[id]), nil
}

// GetUserByEmail resolves through the email index, which points at the
// earliest inserted holder of the address.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(s.users[id]), nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, s.userOrder.len())
	s.userOrder.each(func(id string) bool {
		users = append(users, cloneUser(s.users[id]))
		return true
	})
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.FavoriteBrands != nil {
		u.FavoriteBrands = entity.CopyStrings(patch.FavoriteBrands)
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	return cloneUser(u), nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	delete(s.users, id)
	s.userOrder.remove(id)
	if s.emailIndex[u.Email] == id {
		s.reindexEmailLocked(u.Email)
	}
	return true, nil
}
